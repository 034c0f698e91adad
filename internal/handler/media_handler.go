package handler

import (
	"net/http"

	"github.com/edudash/backend/internal/service"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/edudash/backend/pkg/response"
	"github.com/edudash/backend/pkg/storage"
	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	service service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "no file provided", err))
		return
	}

	f, err := file.Open()
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "could not read uploaded file", err))
		return
	}
	defer f.Close()

	result, err := h.service.Upload(c.Request.Context(), f, storage.UploadInput{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
