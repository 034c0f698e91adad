package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateMany(ctx context.Context, questions []*model.MCQQuestion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MCQQuestion, error)
	FindPage(ctx context.Context, search string, chapterIDs []uuid.UUID, offset, limit int) ([]*model.MCQQuestion, int64, error)
	ExistingTexts(ctx context.Context, texts []string) ([]string, error)
	Update(ctx context.Context, question *model.MCQQuestion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateMany(ctx context.Context, questions []*model.MCQQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MCQQuestion, error) {
	var question model.MCQQuestion
	if err := r.db.WithContext(ctx).
		Preload("Chapter").
		First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindPage(ctx context.Context, search string, chapterIDs []uuid.UUID, offset, limit int) ([]*model.MCQQuestion, int64, error) {
	var questions []*model.MCQQuestion
	var total int64

	query := r.db.WithContext(ctx).Preload("Chapter")

	if search != "" {
		query = query.Where("question ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if len(chapterIDs) == 1 {
		query = query.Where("chapter_id = ?", chapterIDs[0])
	} else if len(chapterIDs) > 1 {
		query = query.Where("chapter_id IN ?", chapterIDs)
	}

	if err := query.Model(&model.MCQQuestion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

// escapeLike neutralizes pattern metacharacters so a search term matches as
// a literal substring instead of a wildcard pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ExistingTexts returns the subset of texts that already exist anywhere in
// the question store. Used by bulk create to drop duplicates before insert.
func (r *questionRepository) ExistingTexts(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var existing []string
	if err := r.db.WithContext(ctx).
		Model(&model.MCQQuestion{}).
		Where("question IN ?", texts).
		Pluck("question", &existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.MCQQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MCQQuestion{}, "id = ?", id).Error
}
