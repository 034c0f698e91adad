package dto

type SubjectRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	BoardID     string `json:"boardId"`
	ClassID     string `json:"classId"`
}

type SubjectFilter struct {
	BoardID string `form:"boardId" binding:"omitempty,uuid"`
	ClassID string `form:"classId" binding:"omitempty,uuid"`
}
