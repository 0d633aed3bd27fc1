package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snackhub/catalog-api/internal/domain"
	"github.com/snackhub/catalog-api/internal/infrastructure/http/response"
)

// RoleEmployees is required for every product mutation. Reads are open.
const RoleEmployees = "employees"

// Claims carries the roles granted to the token subject.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// RequireRole validates the bearer token and checks that it grants the
// given role. A missing or invalid token is an authentication failure
// (401); a valid token without the role is an authorization failure (403).
func RequireRole(secret, role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractBearerToken(r.Header.Get("Authorization"))
			if tokenString == "" {
				response.Error(w, domain.ErrUnauthenticated)
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				response.Error(w, domain.ErrUnauthenticated)
				return
			}

			if !slices.Contains(claims.Roles, role) {
				response.Error(w, domain.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
