package service

import (
	"context"
	"errors"
	"strings"

	"github.com/edudash/backend/internal/cache"
	"github.com/edudash/backend/internal/dto"
	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/internal/repository"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/edudash/backend/pkg/slug"
	"github.com/edudash/backend/pkg/storage"
	"github.com/google/uuid"
)

type SubjectService interface {
	List(ctx context.Context, filter dto.SubjectFilter) ([]*model.Subject, error)
	Get(ctx context.Context, id string) (*model.Subject, error)
	Create(ctx context.Context, req dto.SubjectRequest) (*model.Subject, error)
	Update(ctx context.Context, id string, req dto.SubjectRequest) (*model.Subject, error)
	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	repo      repository.SubjectRepository
	boardRepo repository.BoardRepository
	classRepo repository.ClassRepository
	media     storage.MediaStorage
	listCache *cache.ListCache
}

func NewSubjectService(repo repository.SubjectRepository, boardRepo repository.BoardRepository, classRepo repository.ClassRepository, media storage.MediaStorage, listCache *cache.ListCache) SubjectService {
	return &subjectService{repo: repo, boardRepo: boardRepo, classRepo: classRepo, media: media, listCache: listCache}
}

func (s *subjectService) List(ctx context.Context, filter dto.SubjectFilter) ([]*model.Subject, error) {
	var boardID, classID *uuid.UUID
	if filter.BoardID != "" {
		id, err := parseID("boardId", filter.BoardID)
		if err != nil {
			return nil, err
		}
		boardID = &id
	}
	if filter.ClassID != "" {
		id, err := parseID("classId", filter.ClassID)
		if err != nil {
			return nil, err
		}
		classID = &id
	}

	key := cache.SubjectListKey(filter.BoardID, filter.ClassID)

	var cached []*model.Subject
	if s.listCache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	subjects, err := s.repo.FindAll(ctx, boardID, classID)
	if err != nil {
		return nil, err
	}

	s.listCache.SetJSON(ctx, key, subjects)
	return subjects, nil
}

func (s *subjectService) Get(ctx context.Context, id string) (*model.Subject, error) {
	subjectID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, subjectID)
}

func (s *subjectService) Create(ctx context.Context, req dto.SubjectRequest) (*model.Subject, error) {
	name, slugVal, boardID, classID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a subject with this slug already exists")
	}

	subject := &model.Subject{
		Name:        name,
		Slug:        slugVal,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    req.ImageURL,
		BoardID:     boardID,
		ClassID:     classID,
	}

	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntitySubjects)
	return s.repo.FindByID(ctx, subject.ID)
}

func (s *subjectService) Update(ctx context.Context, id string, req dto.SubjectRequest) (*model.Subject, error) {
	subjectID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	subject, err := s.repo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	name, slugVal, boardID, classID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, subjectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a subject with this slug already exists")
	}

	oldImage := subject.ImageURL
	subject.Name = name
	subject.Slug = slugVal
	subject.Description = strings.TrimSpace(req.Description)
	subject.ImageURL = req.ImageURL
	subject.BoardID = boardID
	subject.ClassID = classID
	subject.Board = nil
	subject.Class = nil

	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, err
	}

	if oldImage != subject.ImageURL {
		removeAsset(ctx, s.media, oldImage)
	}

	s.listCache.Invalidate(ctx, cache.EntitySubjects)
	return s.repo.FindByID(ctx, subjectID)
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	subjectID, err := parseID("id", id)
	if err != nil {
		return err
	}

	subject, err := s.repo.FindByID(ctx, subjectID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, subjectID); err != nil {
		return err
	}

	removeAsset(ctx, s.media, subject.ImageURL)

	s.listCache.Invalidate(ctx,
		cache.EntitySubjects, cache.EntityChapters, cache.EntityQuestions)
	return nil
}

// validate checks field constraints and that the referenced board and class
// exist and agree: the subject's board must be the board its class belongs
// to, otherwise the two stored references could silently diverge.
func (s *subjectService) validate(ctx context.Context, req dto.SubjectRequest) (name, slugVal string, boardID, classID uuid.UUID, err error) {
	var fields []apperror.FieldError

	name = strings.TrimSpace(req.Name)
	fields = checkName("subject", name, fields)

	slugVal = req.Slug
	if slugVal == "" {
		slugVal = slug.Make(name)
	}
	if slugVal == "" {
		fields = append(fields, fieldErr("slug", "slug is required"))
	}

	boardOK := false
	if req.BoardID == "" {
		fields = append(fields, fieldErr("boardId", "boardId is required"))
	} else if boardID, err = uuid.Parse(req.BoardID); err != nil {
		fields = append(fields, fieldErr("boardId", "boardId must be a valid uuid"))
		err = nil
	} else if _, err = s.boardRepo.FindByID(ctx, boardID); err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return "", "", uuid.Nil, uuid.Nil, err
		}
		fields = append(fields, fieldErr("boardId", "board does not exist"))
		err = nil
	} else {
		boardOK = true
	}

	if req.ClassID == "" {
		fields = append(fields, fieldErr("classId", "classId is required"))
	} else if classID, err = uuid.Parse(req.ClassID); err != nil {
		fields = append(fields, fieldErr("classId", "classId must be a valid uuid"))
		err = nil
	} else {
		class, ferr := s.classRepo.FindByID(ctx, classID)
		if ferr != nil {
			if !errors.Is(ferr, apperror.ErrNotFound) {
				return "", "", uuid.Nil, uuid.Nil, ferr
			}
			fields = append(fields, fieldErr("classId", "class does not exist"))
		} else if boardOK && class.BoardID != boardID {
			fields = append(fields, fieldErr("boardId", "board does not match the class's board"))
		}
	}

	if len(fields) > 0 {
		return "", "", uuid.Nil, uuid.Nil, apperror.Validation(fields...)
	}
	return name, slugVal, boardID, classID, nil
}
