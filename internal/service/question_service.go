package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/edudash/backend/internal/cache"
	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/internal/repository"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type QuestionService interface {
	List(ctx context.Context, filter dto.QuestionFilter) (*dto.PaginatedQuestionResponse, error)
	BulkCreate(ctx context.Context, payloads []dto.QuestionPayload) (*dto.BulkCreateResult, error)
	Update(ctx context.Context, id string, payload dto.QuestionPayload) (*model.MCQQuestion, error)
	Delete(ctx context.Context, id string) error
}

type questionService struct {
	repo      repository.QuestionRepository
	listCache *cache.ListCache
}

func NewQuestionService(repo repository.QuestionRepository, listCache *cache.ListCache) QuestionService {
	return &questionService{repo: repo, listCache: listCache}
}

func (s *questionService) List(ctx context.Context, filter dto.QuestionFilter) (*dto.PaginatedQuestionResponse, error) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	var chapterIDs []uuid.UUID
	if filter.ChapterID != "" {
		id, err := parseID("chapterId", filter.ChapterID)
		if err != nil {
			return nil, err
		}
		chapterIDs = append(chapterIDs, id)
	}
	// A set of chapter ids supersedes the single-chapter filter.
	if len(filter.ChapterIDs) > 0 {
		chapterIDs = chapterIDs[:0]
		for _, raw := range filter.ChapterIDs {
			id, err := parseID("chapterIds", raw)
			if err != nil {
				return nil, err
			}
			chapterIDs = append(chapterIDs, id)
		}
	}

	key := cache.QuestionListKey(page, limit, filter.Search, filter.ChapterID, filter.ChapterIDs)

	var cached dto.PaginatedQuestionResponse
	if s.listCache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	offset := (page - 1) * limit
	questions, total, err := s.repo.FindPage(ctx, filter.Search, chapterIDs, offset, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	resp := &dto.PaginatedQuestionResponse{
		Data: questions,
		Pagination: dto.PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}

	s.listCache.SetJSON(ctx, key, resp)
	return resp, nil
}

// BulkCreate validates the whole batch up front, then drops every question
// whose text already exists (in the store or earlier in the batch) and
// inserts the rest. A validation failure on any item rejects the entire
// batch; nothing is inserted.
func (s *questionService) BulkCreate(ctx context.Context, payloads []dto.QuestionPayload) (*dto.BulkCreateResult, error) {
	if len(payloads) == 0 {
		return nil, apperror.Validation(fieldErr("questions", "at least one question is required"))
	}

	var fields []apperror.FieldError
	chapterIDs := make([]uuid.UUID, len(payloads))
	for i, p := range payloads {
		if strings.TrimSpace(p.Question) == "" {
			fields = append(fields, fieldErr(itemField(i, "question"), "question text is required"))
		}
		if len(p.Options) == 0 {
			fields = append(fields, fieldErr(itemField(i, "options"), "options must not be empty"))
		}
		if strings.TrimSpace(p.CorrectAnswer) == "" {
			fields = append(fields, fieldErr(itemField(i, "correctAnswer"), "correctAnswer is required"))
		}
		if p.ChapterID == "" {
			fields = append(fields, fieldErr(itemField(i, "chapterId"), "chapterId is required"))
		} else if id, err := uuid.Parse(p.ChapterID); err != nil {
			fields = append(fields, fieldErr(itemField(i, "chapterId"), "chapterId must be a valid uuid"))
		} else {
			chapterIDs[i] = id
		}
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields...)
	}

	texts := make([]string, len(payloads))
	for i, p := range payloads {
		texts[i] = p.Question
	}

	existing, err := s.repo.ExistingTexts(ctx, texts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing))
	for _, text := range existing {
		seen[text] = true
	}

	var toInsert []*model.MCQQuestion
	var skipped []string
	for i, p := range payloads {
		if seen[p.Question] {
			skipped = append(skipped, p.Question)
			continue
		}
		seen[p.Question] = true

		difficulty := p.Difficulty
		if difficulty == "" {
			difficulty = "medium"
		}
		isActive := true
		if p.IsActive != nil {
			isActive = *p.IsActive
		}

		toInsert = append(toInsert, &model.MCQQuestion{
			Question:      p.Question,
			Options:       model.StringSlice(p.Options),
			CorrectAnswer: p.CorrectAnswer,
			Difficulty:    difficulty,
			ChapterID:     chapterIDs[i],
			IsActive:      isActive,
		})
	}

	// De-duplication removing every item is still a success, with zero
	// inserted.
	if err := s.repo.CreateMany(ctx, toInsert); err != nil {
		return nil, err
	}

	if len(toInsert) > 0 {
		s.listCache.Invalidate(ctx, cache.EntityQuestions)
	}

	return &dto.BulkCreateResult{
		Success:           true,
		InsertedCount:     len(toInsert),
		SkippedDuplicates: skipped,
	}, nil
}

func (s *questionService) Update(ctx context.Context, id string, payload dto.QuestionPayload) (*model.MCQQuestion, error) {
	// Checked before any store access.
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validation(fieldErr("id", "question id is required"))
	}

	questionID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	question, err := s.repo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	// Replace-style: fields overwrite what is stored.
	question.Question = payload.Question
	question.Options = model.StringSlice(payload.Options)
	question.CorrectAnswer = payload.CorrectAnswer
	if payload.Difficulty != "" {
		question.Difficulty = payload.Difficulty
	}
	if payload.ChapterID != "" {
		chapterID, err := parseID("chapterId", payload.ChapterID)
		if err != nil {
			return nil, err
		}
		question.ChapterID = chapterID
		question.Chapter = nil
	}
	if payload.IsActive != nil {
		question.IsActive = *payload.IsActive
	}

	if err := s.repo.Update(ctx, question); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntityQuestions)
	return s.repo.FindByID(ctx, questionID)
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	// Checked before any store access.
	if strings.TrimSpace(id) == "" {
		return apperror.Validation(fieldErr("id", "question id is required"))
	}

	questionID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, questionID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, questionID); err != nil {
		return err
	}

	s.listCache.Invalidate(ctx, cache.EntityQuestions)
	return nil
}

func itemField(index int, field string) string {
	return fmt.Sprintf("questions[%d].%s", index, field)
}
