package service

import (
	"context"
	"sort"

	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
)

// In-memory repository fakes. They honor the same NotFound translation the
// gorm implementations do, so services behave identically in tests.

type mockBoardRepo struct {
	boards  map[uuid.UUID]*model.Board
	deleted []uuid.UUID
}

func newMockBoardRepo() *mockBoardRepo {
	return &mockBoardRepo{boards: make(map[uuid.UUID]*model.Board)}
}

func (m *mockBoardRepo) Create(_ context.Context, board *model.Board) error {
	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	m.boards[board.ID] = board
	return nil
}

func (m *mockBoardRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Board, error) {
	board, ok := m.boards[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return board, nil
}

func (m *mockBoardRepo) FindAll(_ context.Context) ([]*model.Board, error) {
	out := make([]*model.Board, 0, len(m.boards))
	for _, b := range m.boards {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockBoardRepo) ExistsBySlug(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, b := range m.boards {
		if b.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBoardRepo) Update(_ context.Context, board *model.Board) error {
	m.boards[board.ID] = board
	return nil
}

func (m *mockBoardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.boards, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockClassRepo struct {
	classes map[uuid.UUID]*model.Class
	deleted []uuid.UUID
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[uuid.UUID]*model.Class)}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	m.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Class, error) {
	class, ok := m.classes[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return class, nil
}

func (m *mockClassRepo) FindAll(_ context.Context, boardID *uuid.UUID) ([]*model.Class, error) {
	var out []*model.Class
	for _, c := range m.classes {
		if boardID != nil && c.BoardID != *boardID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockClassRepo) ExistsBySlug(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, c := range m.classes {
		if c.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	m.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.classes, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSubjectRepo struct {
	subjects map[uuid.UUID]*model.Subject
	deleted  []uuid.UUID
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[uuid.UUID]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.ID == uuid.Nil {
		subject.ID = uuid.New()
	}
	m.subjects[subject.ID] = subject
	return nil
}

func (m *mockSubjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Subject, error) {
	subject, ok := m.subjects[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return subject, nil
}

func (m *mockSubjectRepo) FindAll(_ context.Context, boardID, classID *uuid.UUID) ([]*model.Subject, error) {
	var out []*model.Subject
	for _, s := range m.subjects {
		if boardID != nil && s.BoardID != *boardID {
			continue
		}
		if classID != nil && s.ClassID != *classID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockSubjectRepo) ExistsBySlug(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, s := range m.subjects {
		if s.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	m.subjects[subject.ID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.subjects, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockChapterRepo struct {
	chapters map[uuid.UUID]*model.Chapter
	deleted  []uuid.UUID
}

func newMockChapterRepo() *mockChapterRepo {
	return &mockChapterRepo{chapters: make(map[uuid.UUID]*model.Chapter)}
}

func (m *mockChapterRepo) Create(_ context.Context, chapter *model.Chapter) error {
	if chapter.ID == uuid.Nil {
		chapter.ID = uuid.New()
	}
	m.chapters[chapter.ID] = chapter
	return nil
}

func (m *mockChapterRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Chapter, error) {
	chapter, ok := m.chapters[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return chapter, nil
}

func (m *mockChapterRepo) FindAll(_ context.Context, classID, subjectID *uuid.UUID) ([]*model.Chapter, error) {
	var out []*model.Chapter
	for _, c := range m.chapters {
		if classID != nil && c.ClassID != *classID {
			continue
		}
		if subjectID != nil && c.SubjectID != *subjectID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockChapterRepo) ExistsBySlug(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, c := range m.chapters {
		if c.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockChapterRepo) Update(_ context.Context, chapter *model.Chapter) error {
	m.chapters[chapter.ID] = chapter
	return nil
}

func (m *mockChapterRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.chapters, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockQuestionRepo struct {
	questions map[uuid.UUID]*model.MCQQuestion

	// captured FindPage arguments for assertions
	lastSearch string
	lastOffset int
	lastLimit  int

	pageResult []*model.MCQQuestion
	pageTotal  int64

	findByIDCalls int
	deleted       []uuid.UUID
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{questions: make(map[uuid.UUID]*model.MCQQuestion)}
}

func (m *mockQuestionRepo) CreateMany(_ context.Context, questions []*model.MCQQuestion) error {
	for _, q := range questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		m.questions[q.ID] = q
	}
	return nil
}

func (m *mockQuestionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MCQQuestion, error) {
	m.findByIDCalls++
	question, ok := m.questions[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return question, nil
}

func (m *mockQuestionRepo) FindPage(_ context.Context, search string, chapterIDs []uuid.UUID, offset, limit int) ([]*model.MCQQuestion, int64, error) {
	m.lastSearch = search
	m.lastOffset = offset
	m.lastLimit = limit
	if m.pageResult != nil {
		return m.pageResult, m.pageTotal, nil
	}

	var out []*model.MCQQuestion
	for _, q := range m.questions {
		if len(chapterIDs) > 0 {
			match := false
			for _, id := range chapterIDs {
				if q.ChapterID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, q)
	}
	total := int64(len(out))
	if offset > len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *mockQuestionRepo) ExistingTexts(_ context.Context, texts []string) ([]string, error) {
	want := make(map[string]bool, len(texts))
	for _, t := range texts {
		want[t] = true
	}
	var existing []string
	for _, q := range m.questions {
		if want[q.Question] {
			existing = append(existing, q.Question)
		}
	}
	return existing, nil
}

func (m *mockQuestionRepo) Update(_ context.Context, question *model.MCQQuestion) error {
	m.questions[question.ID] = question
	return nil
}

func (m *mockQuestionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.questions, id)
	m.deleted = append(m.deleted, id)
	return nil
}
