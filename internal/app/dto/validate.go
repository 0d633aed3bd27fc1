package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/snackhub/catalog-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations against the json field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the request against the field constraints and
// returns a ValidationError carrying only the first violation found.
// It runs before any service logic, so an invalid request never
// touches a store.
func (r *ProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return domain.NewValidationError(violationMessage(verrs[0]))
		}
		return domain.NewValidationError("invalid request body")
	}
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name: must not be blank")
	}
	if r.Price.IsNegative() {
		return domain.NewValidationError("price: must be greater than or equal to 0.00")
	}
	if r.Price.Exponent() < -2 {
		return domain.NewValidationError("price: must have at most 2 decimal places")
	}
	if len(r.Price.Abs().Truncate(0).String()) > 10 {
		return domain.NewValidationError("price: must have at most 10 integer digits")
	}
	return nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s: must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: is invalid", fe.Field())
	}
}
