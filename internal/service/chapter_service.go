package service

import (
	"context"
	"errors"
	"strings"

	"github.com/edudash/backend/internal/cache"
	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/enrichment"
	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/internal/repository"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/edudash/backend/pkg/slug"
	"github.com/google/uuid"
)

const defaultGenerationCount = 10

type ChapterService interface {
	List(ctx context.Context, filter dto.ChapterFilter) ([]*model.Chapter, error)
	Get(ctx context.Context, id string) (*model.Chapter, error)
	Create(ctx context.Context, req dto.ChapterRequest) (*model.Chapter, error)
	Update(ctx context.Context, id string, req dto.ChapterRequest) (*model.Chapter, error)
	Delete(ctx context.Context, id string) error
	GenerateQuestions(ctx context.Context, id string, req dto.GenerateQuestionsRequest) ([]enrichment.GeneratedQuestion, error)
	PushToEnrichment(ctx context.Context, id string) error
}

type chapterService struct {
	repo        repository.ChapterRepository
	classRepo   repository.ClassRepository
	subjectRepo repository.SubjectRepository
	enricher    enrichment.Service
	listCache   *cache.ListCache
}

func NewChapterService(repo repository.ChapterRepository, classRepo repository.ClassRepository, subjectRepo repository.SubjectRepository, enricher enrichment.Service, listCache *cache.ListCache) ChapterService {
	return &chapterService{
		repo:        repo,
		classRepo:   classRepo,
		subjectRepo: subjectRepo,
		enricher:    enricher,
		listCache:   listCache,
	}
}

func (s *chapterService) List(ctx context.Context, filter dto.ChapterFilter) ([]*model.Chapter, error) {
	var classID, subjectID *uuid.UUID
	if filter.ClassID != "" {
		id, err := parseID("classId", filter.ClassID)
		if err != nil {
			return nil, err
		}
		classID = &id
	}
	if filter.SubjectID != "" {
		id, err := parseID("subjectId", filter.SubjectID)
		if err != nil {
			return nil, err
		}
		subjectID = &id
	}

	key := cache.ChapterListKey(filter.ClassID, filter.SubjectID)

	var cached []*model.Chapter
	if s.listCache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	chapters, err := s.repo.FindAll(ctx, classID, subjectID)
	if err != nil {
		return nil, err
	}

	s.listCache.SetJSON(ctx, key, chapters)
	return chapters, nil
}

func (s *chapterService) Get(ctx context.Context, id string) (*model.Chapter, error) {
	chapterID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, chapterID)
}

func (s *chapterService) Create(ctx context.Context, req dto.ChapterRequest) (*model.Chapter, error) {
	name, slugVal, classID, subjectID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a chapter with this slug already exists")
	}

	chapter := &model.Chapter{
		Name:          name,
		Slug:          slugVal,
		ChapterNumber: req.ChapterNumber,
		PDFURL:        req.PDFURL,
		ClassID:       classID,
		SubjectID:     subjectID,
	}

	if err := s.repo.Create(ctx, chapter); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntityChapters)
	return s.repo.FindByID(ctx, chapter.ID)
}

func (s *chapterService) Update(ctx context.Context, id string, req dto.ChapterRequest) (*model.Chapter, error) {
	chapterID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	chapter, err := s.repo.FindByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	name, slugVal, classID, subjectID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, chapterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a chapter with this slug already exists")
	}

	chapter.Name = name
	chapter.Slug = slugVal
	chapter.ChapterNumber = req.ChapterNumber
	chapter.PDFURL = req.PDFURL
	chapter.ClassID = classID
	chapter.SubjectID = subjectID
	chapter.Class = nil
	chapter.Subject = nil

	if err := s.repo.Update(ctx, chapter); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntityChapters)
	return s.repo.FindByID(ctx, chapterID)
}

func (s *chapterService) Delete(ctx context.Context, id string) error {
	chapterID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, chapterID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, chapterID); err != nil {
		return err
	}

	s.listCache.Invalidate(ctx, cache.EntityChapters, cache.EntityQuestions)
	return nil
}

// GenerateQuestions relays the chapter's metadata to the external generation
// service and returns its questions verbatim. The call is synchronous and
// bounded by the client timeout; the caller's context cancels it.
func (s *chapterService) GenerateQuestions(ctx context.Context, id string, req dto.GenerateQuestionsRequest) ([]enrichment.GeneratedQuestion, error) {
	chapter, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	kind := enrichment.Kind(req.Kind)
	if kind == "" {
		kind = enrichment.KindMCQ
	}
	if !enrichment.ValidKind(kind) {
		return nil, apperror.Validation(fieldErr("kind", "kind must be one of: mcq, short, long"))
	}

	count := req.Count
	if count <= 0 {
		count = defaultGenerationCount
	}

	return s.enricher.Generate(ctx, kind, s.chapterMeta(chapter), count)
}

// PushToEnrichment registers the chapter's PDF with the external service so
// it can be indexed for later generation calls.
func (s *chapterService) PushToEnrichment(ctx context.Context, id string) error {
	chapter, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.enricher.UploadChapter(ctx, s.chapterMeta(chapter), chapter.PDFURL)
}

func (s *chapterService) chapterMeta(chapter *model.Chapter) enrichment.ChapterMeta {
	meta := enrichment.ChapterMeta{Chapter: chapter.Name}
	if chapter.Subject != nil {
		meta.Subject = chapter.Subject.Name
	}
	if chapter.Class != nil {
		meta.Book = chapter.Class.Name
	}
	return meta
}

// validate checks field constraints and that the referenced class and
// subject exist and agree: the chapter's class must be the class its subject
// belongs to.
func (s *chapterService) validate(ctx context.Context, req dto.ChapterRequest) (name, slugVal string, classID, subjectID uuid.UUID, err error) {
	var fields []apperror.FieldError

	name = strings.TrimSpace(req.Name)
	fields = checkName("chapter", name, fields)

	slugVal = req.Slug
	if slugVal == "" {
		slugVal = slug.Make(name)
	}
	if slugVal == "" {
		fields = append(fields, fieldErr("slug", "slug is required"))
	}

	if req.ChapterNumber < 1 {
		fields = append(fields, fieldErr("chapterNumber", "chapterNumber must be a positive integer"))
	}

	if strings.TrimSpace(req.PDFURL) == "" {
		fields = append(fields, fieldErr("pdfUrl", "pdfUrl is required"))
	}

	classOK := false
	if req.ClassID == "" {
		fields = append(fields, fieldErr("classId", "classId is required"))
	} else if classID, err = uuid.Parse(req.ClassID); err != nil {
		fields = append(fields, fieldErr("classId", "classId must be a valid uuid"))
		err = nil
	} else if _, err = s.classRepo.FindByID(ctx, classID); err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return "", "", uuid.Nil, uuid.Nil, err
		}
		fields = append(fields, fieldErr("classId", "class does not exist"))
		err = nil
	} else {
		classOK = true
	}

	if req.SubjectID == "" {
		fields = append(fields, fieldErr("subjectId", "subjectId is required"))
	} else if subjectID, err = uuid.Parse(req.SubjectID); err != nil {
		fields = append(fields, fieldErr("subjectId", "subjectId must be a valid uuid"))
		err = nil
	} else {
		subject, ferr := s.subjectRepo.FindByID(ctx, subjectID)
		if ferr != nil {
			if !errors.Is(ferr, apperror.ErrNotFound) {
				return "", "", uuid.Nil, uuid.Nil, ferr
			}
			fields = append(fields, fieldErr("subjectId", "subject does not exist"))
		} else if classOK && subject.ClassID != classID {
			fields = append(fields, fieldErr("classId", "class does not match the subject's class"))
		}
	}

	if len(fields) > 0 {
		return "", "", uuid.Nil, uuid.Nil, apperror.Validation(fields...)
	}
	return name, slugVal, classID, subjectID, nil
}
