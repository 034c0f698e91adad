package dto

import "github.com/edudash/backend/internal/model"

// QuestionPayload is one question in a bulk create request. The endpoint
// accepts either a single object or an array of them.
type QuestionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	ChapterID     string   `json:"chapterId"`
	IsActive      *bool    `json:"isActive"`
}

type QuestionFilter struct {
	Page       int      `form:"page"`
	Limit      int      `form:"limit"`
	Search     string   `form:"search"`
	ChapterID  string   `form:"chapterId" binding:"omitempty,uuid"`
	ChapterIDs []string `form:"chapterIds[]" binding:"omitempty,dive,uuid"`
}

type BulkCreateResult struct {
	Success           bool     `json:"success"`
	InsertedCount     int      `json:"insertedCount"`
	SkippedDuplicates []string `json:"skippedDuplicates,omitempty"`
}

type PaginatedQuestionResponse struct {
	Data       []*model.MCQQuestion `json:"data"`
	Pagination PaginationMeta       `json:"pagination"`
}
