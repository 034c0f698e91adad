package handler

import (
	"errors"
	"net/http"

	"github.com/edudash/backend/pkg/apperror"
	pkgvalidator "github.com/edudash/backend/pkg/validator"
	"github.com/go-playground/validator/v10"
)

// bindError turns a gin binding failure into a 400 AppError. Tag violations
// keep their per-field detail; malformed bodies get the generic message.
func bindError(message string, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return &apperror.AppError{
			Code:    http.StatusBadRequest,
			Message: message,
			Fields:  pkgvalidator.FieldErrors(validationErrors),
			Err:     apperror.ErrBadRequest,
		}
	}
	return apperror.New(http.StatusBadRequest, message, err)
}
