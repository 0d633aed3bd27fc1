package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/snackhub/catalog-api/internal/domain"
)

// ErrorResponse is the single error envelope the API produces. The
// timestamp is attached here, at response-construction time, not when
// the error was created.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	ErrorCode int       `json:"error_code"`
	Timestamp time.Time `json:"timestamp"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// NoContent sends an empty response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps a domain error to its transport status and writes the
// envelope. This is the only place the taxonomy meets HTTP: anything
// that is not a taxonomy value collapses to the generic internal
// error, so unanticipated failures never leak details to the caller.
func Error(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		derr = domain.ErrInternal
	}

	status := statusFor(derr)
	JSON(w, status, ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   derr.Message,
		ErrorCode: derr.Code,
		Timestamp: time.Now().UTC(),
	})
}

// statusFor picks the transport status for each taxonomy entry.
// CategoryNotFound is a bad request: it only ever surfaces as an
// unresolvable reference inside a product operation.
func statusFor(e *domain.Error) int {
	switch e.Code {
	case domain.ErrCategoryNotFound.Code:
		return http.StatusBadRequest
	case domain.ErrProductNotFound.Code:
		return http.StatusNotFound
	case 400:
		return http.StatusBadRequest
	case domain.ErrUnauthenticated.Code:
		return http.StatusUnauthorized
	case domain.ErrUnauthorized.Code:
		return http.StatusForbidden
	case domain.ErrNameConflict.Code:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
