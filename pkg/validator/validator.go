package validator

import (
	"fmt"
	"strings"

	"github.com/edudash/backend/pkg/apperror"
	"github.com/go-playground/validator/v10"
)

// FieldErrors converts go-playground validation errors into the per-field
// shape used by apperror, so binding failures and service-side checks render
// the same way to clients.
func FieldErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "request", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   strings.ToLower(fieldError.Field()[:1]) + fieldError.Field()[1:],
			Message: getFieldErrorMessage(fieldError),
		})
	}
	return fields
}

// FormatValidationError joins every violation into a single message.
func FormatValidationError(err error) string {
	fields := FieldErrors(err)
	messages := make([]string, 0, len(fields))
	for _, f := range fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid uuid", field)
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}
