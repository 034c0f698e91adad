package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/edudash/backend/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors, never return raw detail to the client
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	body := gin.H{"error": err.Error()}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}

	c.JSON(code, body)
}

// ResponseMessage standardized confirmation body for deletes and the like
func ResponseMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
