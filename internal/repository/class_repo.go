package repository

import (
	"context"
	"errors"

	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	FindAll(ctx context.Context, boardID *uuid.UUID) ([]*model.Class, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).
		Preload("Board").
		First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context, boardID *uuid.UUID) ([]*model.Class, error) {
	var classes []*model.Class
	query := r.db.WithContext(ctx).Preload("Board")

	if boardID != nil {
		query = query.Where("board_id = ?", boardID)
	}

	if err := query.Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Class{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *classRepository) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

// Delete cascades to subjects tied to the class, chapters tied to either the
// class or those subjects, and the questions of those chapters.
func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subjectIDs := tx.Model(&model.Subject{}).Select("id").Where("class_id = ?", id)
		chapterIDs := tx.Model(&model.Chapter{}).Select("id").
			Where("class_id = ? OR subject_id IN (?)", id, subjectIDs)

		if err := tx.Where("chapter_id IN (?)", chapterIDs).Delete(&model.MCQQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ? OR subject_id IN (?)", id, subjectIDs).
			Delete(&model.Chapter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).Delete(&model.Subject{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Class{}, "id = ?", id).Error
	})
}
