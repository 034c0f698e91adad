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
	"github.com/google/uuid"
)

type ClassService interface {
	List(ctx context.Context, filter dto.ClassFilter) ([]*model.Class, error)
	Get(ctx context.Context, id string) (*model.Class, error)
	Create(ctx context.Context, req dto.ClassRequest) (*model.Class, error)
	Update(ctx context.Context, id string, req dto.ClassRequest) (*model.Class, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	repo      repository.ClassRepository
	boardRepo repository.BoardRepository
	listCache *cache.ListCache
}

func NewClassService(repo repository.ClassRepository, boardRepo repository.BoardRepository, listCache *cache.ListCache) ClassService {
	return &classService{repo: repo, boardRepo: boardRepo, listCache: listCache}
}

func (s *classService) List(ctx context.Context, filter dto.ClassFilter) ([]*model.Class, error) {
	var boardID *uuid.UUID
	if filter.BoardID != "" {
		id, err := parseID("boardId", filter.BoardID)
		if err != nil {
			return nil, err
		}
		boardID = &id
	}

	key := cache.ClassListKey(filter.BoardID)

	var cached []*model.Class
	if s.listCache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	classes, err := s.repo.FindAll(ctx, boardID)
	if err != nil {
		return nil, err
	}

	s.listCache.SetJSON(ctx, key, classes)
	return classes, nil
}

func (s *classService) Get(ctx context.Context, id string) (*model.Class, error) {
	classID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, classID)
}

func (s *classService) Create(ctx context.Context, req dto.ClassRequest) (*model.Class, error) {
	name, slugVal, boardID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a class with this slug already exists")
	}

	class := &model.Class{
		Name:    name,
		Slug:    slugVal,
		Type:    req.Type,
		BoardID: boardID,
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntityClasses)
	return s.repo.FindByID(ctx, class.ID)
}

func (s *classService) Update(ctx context.Context, id string, req dto.ClassRequest) (*model.Class, error) {
	classID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	class, err := s.repo.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	name, slugVal, boardID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, classID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a class with this slug already exists")
	}

	class.Name = name
	class.Slug = slugVal
	class.Type = req.Type
	class.BoardID = boardID
	class.Board = nil

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntityClasses)
	return s.repo.FindByID(ctx, classID)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	classID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, classID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, classID); err != nil {
		return err
	}

	s.listCache.Invalidate(ctx,
		cache.EntityClasses, cache.EntitySubjects,
		cache.EntityChapters, cache.EntityQuestions)
	return nil
}

func (s *classService) validate(ctx context.Context, req dto.ClassRequest) (name, slugVal string, boardID uuid.UUID, err error) {
	var fields []apperror.FieldError

	name = strings.TrimSpace(req.Name)
	fields = checkName("class", name, fields)

	slugVal = req.Slug
	if slugVal == "" {
		slugVal = slug.Make(name)
	}
	if slugVal == "" {
		fields = append(fields, fieldErr("slug", "slug is required"))
	}

	if req.Type == "" {
		fields = append(fields, fieldErr("type", "class type is required"))
	} else if !model.ValidClassType(req.Type) {
		fields = append(fields, fieldErr("type", "class type is not a recognized level"))
	}

	if req.BoardID == "" {
		fields = append(fields, fieldErr("boardId", "boardId is required"))
	} else if boardID, err = uuid.Parse(req.BoardID); err != nil {
		fields = append(fields, fieldErr("boardId", "boardId must be a valid uuid"))
		err = nil
	} else if _, err = s.boardRepo.FindByID(ctx, boardID); err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return "", "", uuid.Nil, err
		}
		fields = append(fields, fieldErr("boardId", "board does not exist"))
		err = nil
	}

	if len(fields) > 0 {
		return "", "", uuid.Nil, apperror.Validation(fields...)
	}
	return name, slugVal, boardID, nil
}
