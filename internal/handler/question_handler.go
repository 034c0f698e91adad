package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/service"
	"github.com/edudash/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	service service.QuestionService
}

func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	var filter dto.QuestionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, bindError("invalid query parameters", err))
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BulkCreateQuestions accepts either a single question object or an array of
// them, matching the historical contract of the endpoint.
func (h *QuestionHandler) BulkCreateQuestions(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	var payloads []dto.QuestionPayload
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &payloads)
	} else {
		var single dto.QuestionPayload
		if err = json.Unmarshal(trimmed, &single); err == nil {
			payloads = []dto.QuestionPayload{single}
		}
	}
	if err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	result, err := h.service.BulkCreate(c.Request.Context(), payloads)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var payload dto.QuestionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	question, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}
	response.ResponseMessage(c, http.StatusOK, "question deleted successfully")
}
