package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/edudash/backend/pkg/apperror"
	"github.com/edudash/backend/pkg/storage"
)

// MaxUploadSize caps incoming files at 50MB.
const MaxUploadSize = 50 * 1024 * 1024

type MediaService interface {
	Upload(ctx context.Context, r io.Reader, in storage.UploadInput) (*storage.UploadResult, error)
}

type mediaService struct {
	fileStorage storage.MediaStorage
}

func NewMediaService(fileStorage storage.MediaStorage) MediaService {
	return &mediaService{fileStorage: fileStorage}
}

// Upload stores a file through the media gateway. Provider failures surface
// as a generic retriable message; the underlying error is logged server-side
// only.
func (s *mediaService) Upload(ctx context.Context, r io.Reader, in storage.UploadInput) (*storage.UploadResult, error) {
	if in.Size > MaxUploadSize {
		return nil, apperror.Validation(fieldErr("file", "file size too large, maximum 50MB allowed"))
	}

	result, err := s.fileStorage.Upload(ctx, r, in)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError,
			"upload failed, please try again",
			fmt.Errorf("media upload: %w", err))
	}

	return result, nil
}
