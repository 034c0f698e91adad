package service

import (
	"context"
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

type BoardService interface {
	List(ctx context.Context) ([]*model.Board, error)
	Get(ctx context.Context, id string) (*model.Board, error)
	Create(ctx context.Context, req dto.BoardRequest) (*model.Board, error)
	Update(ctx context.Context, id string, req dto.BoardRequest) (*model.Board, error)
	Delete(ctx context.Context, id string) error
}

type boardService struct {
	repo      repository.BoardRepository
	media     storage.MediaStorage
	listCache *cache.ListCache
}

func NewBoardService(repo repository.BoardRepository, media storage.MediaStorage, listCache *cache.ListCache) BoardService {
	return &boardService{repo: repo, media: media, listCache: listCache}
}

func (s *boardService) List(ctx context.Context) ([]*model.Board, error) {
	key := cache.BoardListKey()

	var cached []*model.Board
	if s.listCache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	boards, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.listCache.SetJSON(ctx, key, boards)
	return boards, nil
}

func (s *boardService) Get(ctx context.Context, id string) (*model.Board, error) {
	boardID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, boardID)
}

func (s *boardService) Create(ctx context.Context, req dto.BoardRequest) (*model.Board, error) {
	name, slugVal, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a board with this slug already exists")
	}

	board := &model.Board{
		Name:        name,
		Slug:        slugVal,
		Description: strings.TrimSpace(req.Description),
		LogoURL:     req.LogoURL,
	}

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, err
	}

	s.listCache.Invalidate(ctx, cache.EntityBoards)
	return board, nil
}

func (s *boardService) Update(ctx context.Context, id string, req dto.BoardRequest) (*model.Board, error) {
	boardID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	board, err := s.repo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	name, slugVal, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, slugVal, boardID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a board with this slug already exists")
	}

	// Replace-style update: every field is overwritten with what was sent.
	oldLogo := board.LogoURL
	board.Name = name
	board.Slug = slugVal
	board.Description = strings.TrimSpace(req.Description)
	board.LogoURL = req.LogoURL

	if err := s.repo.Update(ctx, board); err != nil {
		return nil, err
	}

	if oldLogo != board.LogoURL {
		removeAsset(ctx, s.media, oldLogo)
	}

	s.listCache.Invalidate(ctx, cache.EntityBoards)
	return board, nil
}

func (s *boardService) Delete(ctx context.Context, id string) error {
	boardID, err := parseID("id", id)
	if err != nil {
		return err
	}

	board, err := s.repo.FindByID(ctx, boardID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, boardID); err != nil {
		return err
	}

	removeAsset(ctx, s.media, board.LogoURL)

	// The cascade touches every dependent entity type.
	s.listCache.Invalidate(ctx,
		cache.EntityBoards, cache.EntityClasses, cache.EntitySubjects,
		cache.EntityChapters, cache.EntityQuestions)
	return nil
}

func (s *boardService) validate(req dto.BoardRequest) (name, slugVal string, err error) {
	var fields []apperror.FieldError

	name = strings.TrimSpace(req.Name)
	fields = checkName("board", name, fields)

	slugVal = req.Slug
	if slugVal == "" {
		slugVal = slug.Make(name)
	}
	if slugVal == "" {
		fields = append(fields, fieldErr("slug", "slug is required"))
	}

	if len(fields) > 0 {
		return "", "", apperror.Validation(fields...)
	}
	return name, slugVal, nil
}
