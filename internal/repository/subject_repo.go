package repository

import (
	"context"
	"errors"

	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	FindAll(ctx context.Context, boardID, classID *uuid.UUID) ([]*model.Subject, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, subject *model.Subject) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).
		Preload("Board").
		Preload("Class").
		First(&subject, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll(ctx context.Context, boardID, classID *uuid.UUID) ([]*model.Subject, error) {
	var subjects []*model.Subject
	query := r.db.WithContext(ctx).Preload("Board").Preload("Class")

	if boardID != nil {
		query = query.Where("board_id = ?", boardID)
	}
	if classID != nil {
		query = query.Where("class_id = ?", classID)
	}

	if err := query.Order("created_at DESC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Subject{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

// Delete cascades to the subject's chapters and their questions.
func (r *subjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chapterIDs := tx.Model(&model.Chapter{}).Select("id").Where("subject_id = ?", id)

		if err := tx.Where("chapter_id IN (?)", chapterIDs).Delete(&model.MCQQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&model.Chapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subject{}, "id = ?", id).Error
	})
}
