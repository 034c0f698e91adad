package handler

import (
	"net/http"

	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/service"
	"github.com/edudash/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	service service.BoardService
}

func NewBoardHandler(service service.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	board, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	var req dto.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, bindError("invalid request body", err))
		return
	}

	board, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}
	response.ResponseMessage(c, http.StatusOK, "board deleted successfully")
}
