package dto

type ClassRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Type    string `json:"type"`
	BoardID string `json:"boardId"`
}

type ClassFilter struct {
	BoardID string `form:"boardId" binding:"omitempty,uuid"`
}
