package handler

import (
	"net/http"

	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/service"
	"github.com/edudash/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	service service.ChapterService
}

func NewChapterHandler(service service.ChapterService) *ChapterHandler {
	return &ChapterHandler{service: service}
}

func (h *ChapterHandler) ListChapters(c *gin.Context) {
	var filter dto.ChapterFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, bindError("invalid query parameters", err))
		return
	}

	chapters, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapters)
}

func (h *ChapterHandler) GetChapter(c *gin.Context) {
	chapter, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	var req dto.ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	chapter, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chapter)
}

func (h *ChapterHandler) UpdateChapter(c *gin.Context) {
	var req dto.ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	chapter, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

func (h *ChapterHandler) DeleteChapter(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}
	response.ResponseMessage(c, http.StatusOK, "chapter deleted successfully")
}

// GenerateQuestions relays the chapter to the external generation service
// and returns the generated questions without persisting them; saving goes
// through the bulk question endpoint.
func (h *ChapterHandler) GenerateQuestions(c *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	questions, err := h.service.GenerateQuestions(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

func (h *ChapterHandler) PushToEnrichment(c *gin.Context) {
	if err := h.service.PushToEnrichment(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}
	response.ResponseMessage(c, http.StatusOK, "chapter pushed to enrichment service")
}
