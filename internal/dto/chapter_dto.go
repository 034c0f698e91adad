package dto

type ChapterRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	ChapterNumber int    `json:"chapterNumber"`
	PDFURL        string `json:"pdfUrl"`
	ClassID       string `json:"classId"`
	SubjectID     string `json:"subjectId"`
}

type ChapterFilter struct {
	ClassID   string `form:"classId" binding:"omitempty,uuid"`
	SubjectID string `form:"subjectId" binding:"omitempty,uuid"`
}

// GenerateQuestionsRequest relays a chapter to the external generation
// service. Kind selects the question style.
type GenerateQuestionsRequest struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}
