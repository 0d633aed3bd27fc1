package domain

// Error is the closed set of failures the catalog services produce.
// The HTTP layer matches on these values to pick a response shape; the
// numeric code is part of the API contract and never changes.
type Error struct {
	Code    int
	Name    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches by code so wrapped copies still compare equal to the
// taxonomy values below under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of e carrying the underlying error for
// logging. The caller-visible code and message stay the same.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

var (
	ErrCategoryNotFound = &Error{Code: 1, Name: "category_not_found", Message: "category does not exist"}
	ErrProductNotFound  = &Error{Code: 2, Name: "product_not_found", Message: "product does not exist"}
	ErrUnauthenticated  = &Error{Code: 401, Name: "unauthenticated", Message: "missing or invalid credentials"}
	ErrUnauthorized     = &Error{Code: 403, Name: "unauthorized", Message: "insufficient permissions"}
	ErrNameConflict     = &Error{Code: 409, Name: "name_conflict", Message: "name already exists"}
	ErrInternal         = &Error{Code: 999, Name: "internal_error", Message: "unexpected internal error"}
)

// NewValidationError builds a validation failure carrying the first
// field violation found, never an aggregate.
func NewValidationError(message string) *Error {
	return &Error{Code: 400, Name: "validation_error", Message: message}
}
