package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/edudash/backend/pkg/apperror"
	"github.com/edudash/backend/pkg/storage"
	"github.com/google/uuid"
)

const maxNameLength = 100

func parseID(field, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format: %w", field, apperror.ErrBadRequest)
	}
	return parsed, nil
}

// checkName appends violations for a required display name capped at 100
// characters. The entity label keeps messages readable across entity types.
func checkName(entity, name string, fields []apperror.FieldError) []apperror.FieldError {
	if strings.TrimSpace(name) == "" {
		return append(fields, apperror.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("%s name is required", entity),
		})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(fields, apperror.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("%s name must be at most %d characters", entity, maxNameLength),
		})
	}
	return fields
}

func fieldErr(field, message string) apperror.FieldError {
	return apperror.FieldError{Field: field, Message: message}
}

// removeAsset drops a replaced or orphaned file from media storage.
// Best-effort: the owning record is already mutated, so a provider failure
// is logged and never fails the request.
func removeAsset(ctx context.Context, media storage.MediaStorage, fileURL string) {
	if media == nil || fileURL == "" {
		return
	}
	if err := media.Delete(ctx, fileURL); err != nil {
		log.Printf("failed to remove stored file %s: %v", fileURL, err)
	}
}
