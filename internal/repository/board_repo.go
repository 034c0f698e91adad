package repository

import (
	"context"
	"errors"

	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository interface {
	Create(ctx context.Context, board *model.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	FindAll(ctx context.Context) ([]*model.Board, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindAll(ctx context.Context) ([]*model.Board, error) {
	var boards []*model.Board
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Board{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *boardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// Delete removes the board and everything under it in a single transaction:
// questions of dependent chapters, the chapters, subjects, classes, then the
// board itself. The cascade is explicit so it holds on any storage backend.
func (r *boardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		classIDs := tx.Model(&model.Class{}).Select("id").Where("board_id = ?", id)
		subjectIDs := tx.Model(&model.Subject{}).Select("id").Where("board_id = ?", id)
		chapterIDs := tx.Model(&model.Chapter{}).Select("id").
			Where("class_id IN (?) OR subject_id IN (?)", classIDs, subjectIDs)

		if err := tx.Where("chapter_id IN (?)", chapterIDs).Delete(&model.MCQQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id IN (?) OR subject_id IN (?)", classIDs, subjectIDs).
			Delete(&model.Chapter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&model.Subject{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&model.Class{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Board{}, "id = ?", id).Error
	})
}
