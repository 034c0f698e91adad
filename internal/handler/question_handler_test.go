package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubQuestionService struct {
	lastPayloads []dto.QuestionPayload
	lastFilter   dto.QuestionFilter
	lastID       string
	listResp     *dto.PaginatedQuestionResponse
	bulkResp     *dto.BulkCreateResult
	question     *model.MCQQuestion
	err          error
}

func (s *stubQuestionService) List(_ context.Context, filter dto.QuestionFilter) (*dto.PaginatedQuestionResponse, error) {
	s.lastFilter = filter
	return s.listResp, s.err
}

func (s *stubQuestionService) BulkCreate(_ context.Context, payloads []dto.QuestionPayload) (*dto.BulkCreateResult, error) {
	s.lastPayloads = payloads
	return s.bulkResp, s.err
}

func (s *stubQuestionService) Update(_ context.Context, id string, _ dto.QuestionPayload) (*model.MCQQuestion, error) {
	s.lastID = id
	return s.question, s.err
}

func (s *stubQuestionService) Delete(_ context.Context, id string) error {
	s.lastID = id
	return s.err
}

func questionRouter(svc *stubQuestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuestionHandler(svc)
	router := gin.New()
	router.GET("/api/questions", h.ListQuestions)
	router.POST("/api/questions", h.BulkCreateQuestions)
	router.PUT("/api/questions/:id", h.UpdateQuestion)
	router.DELETE("/api/questions/:id", h.DeleteQuestion)
	return router
}

func TestBulkCreateAcceptsArray(t *testing.T) {
	svc := &stubQuestionService{bulkResp: &dto.BulkCreateResult{Success: true, InsertedCount: 2}}
	router := questionRouter(svc)

	body := `[{"question":"q1","options":["a"],"correctAnswer":"a","chapterId":"x"},
	          {"question":"q2","options":["b"],"correctAnswer":"b","chapterId":"x"}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	if len(svc.lastPayloads) != 2 {
		t.Errorf("service received %d payloads, want 2", len(svc.lastPayloads))
	}
}

func TestBulkCreateAcceptsSingleObject(t *testing.T) {
	svc := &stubQuestionService{bulkResp: &dto.BulkCreateResult{Success: true, InsertedCount: 1}}
	router := questionRouter(svc)

	body := `{"question":"q1","options":["a"],"correctAnswer":"a","chapterId":"x"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	if len(svc.lastPayloads) != 1 || svc.lastPayloads[0].Question != "q1" {
		t.Errorf("single object not wrapped into a batch: %v", svc.lastPayloads)
	}
}

func TestBulkCreateMalformedBody(t *testing.T) {
	router := questionRouter(&stubQuestionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBulkCreateValidationErrorBody(t *testing.T) {
	svc := &stubQuestionService{err: apperror.Validation(
		apperror.FieldError{Field: "questions[0].question", Message: "question text is required"},
	)}
	router := questionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(`[{"options":["a"]}]`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var body struct {
		Error  string               `json:"error"`
		Fields []apperror.FieldError `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Fields) != 1 || body.Fields[0].Field != "questions[0].question" {
		t.Errorf("fields = %v", body.Fields)
	}
}

func TestListQuestionsQueryBinding(t *testing.T) {
	svc := &stubQuestionService{listResp: &dto.PaginatedQuestionResponse{
		Data:       []*model.MCQQuestion{},
		Pagination: dto.PaginationMeta{Page: 2, Limit: 5},
	}}
	router := questionRouter(svc)

	idA, idB := uuid.NewString(), uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/questions?page=2&limit=5&search=velocity&chapterIds[]="+idA+"&chapterIds[]="+idB, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if svc.lastFilter.Page != 2 || svc.lastFilter.Limit != 5 || svc.lastFilter.Search != "velocity" {
		t.Errorf("filter = %+v", svc.lastFilter)
	}
	if len(svc.lastFilter.ChapterIDs) != 2 {
		t.Errorf("chapterIds = %v, want 2 entries", svc.lastFilter.ChapterIDs)
	}
}

func TestListQuestionsRejectsBadChapterFilter(t *testing.T) {
	router := questionRouter(&stubQuestionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/questions?chapterId=not-a-uuid", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Fields []apperror.FieldError `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Fields) != 1 || body.Fields[0].Field != "chapterID" {
		t.Errorf("fields = %v", body.Fields)
	}
}

func TestDeleteQuestionMessage(t *testing.T) {
	svc := &stubQuestionService{}
	router := questionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/questions/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.lastID != "abc" {
		t.Errorf("service received id %q", svc.lastID)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] == "" {
		t.Errorf("missing confirmation message in %s", w.Body.String())
	}
}

func TestUpdateQuestionNotFound(t *testing.T) {
	svc := &stubQuestionService{err: apperror.ErrNotFound}
	router := questionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/questions/abc", strings.NewReader(`{"question":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
