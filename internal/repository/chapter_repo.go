package repository

import (
	"context"
	"errors"

	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChapterRepository interface {
	Create(ctx context.Context, chapter *model.Chapter) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Chapter, error)
	FindAll(ctx context.Context, classID, subjectID *uuid.UUID) ([]*model.Chapter, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, chapter *model.Chapter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

func (r *chapterRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Subject").
		First(&chapter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) FindAll(ctx context.Context, classID, subjectID *uuid.UUID) ([]*model.Chapter, error) {
	var chapters []*model.Chapter
	query := r.db.WithContext(ctx).Preload("Class").Preload("Subject")

	if classID != nil {
		query = query.Where("class_id = ?", classID)
	}
	if subjectID != nil {
		query = query.Where("subject_id = ?", subjectID)
	}

	if err := query.Order("created_at DESC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *chapterRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Chapter{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *chapterRepository) Update(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Save(chapter).Error
}

// Delete cascades to the chapter's questions.
func (r *chapterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chapter_id = ?", id).Delete(&model.MCQQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Chapter{}, "id = ?", id).Error
	})
}
