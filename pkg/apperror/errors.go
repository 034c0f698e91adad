package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound    = errors.New("resource not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("duplicate resource")
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("upstream service unavailable")
	ErrRemote      = errors.New("upstream service error")
	ErrInternal    = errors.New("internal server error")
)

// FieldError describes a single violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is a custom error type that can hold an HTTP status code
// and, for validation failures, the full list of violated fields.
type AppError struct {
	Code    int
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation builds a 422 AppError carrying every violated field, with the
// joined field messages as the top-level error message.
func Validation(fields ...FieldError) *AppError {
	msg := ""
	for i, f := range fields {
		if i > 0 {
			msg += "; "
		}
		msg += f.Message
	}
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Fields:  fields,
		Err:     ErrValidation,
	}
}

// Conflict builds a 400 AppError for duplicate slugs or duplicate records.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     ErrConflict,
	}
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}
	// Upstream and uncaught errors default to internal server error
	return http.StatusInternalServerError
}
