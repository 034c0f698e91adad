package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringSlice stores an ordered list of strings as a JSONB column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

type MCQQuestion struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Question      string      `gorm:"type:text;not null" json:"question"`
	Options       StringSlice `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string      `gorm:"type:text;not null" json:"correctAnswer"`
	Difficulty    string      `gorm:"size:50;not null;default:medium" json:"difficulty"`
	ChapterID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"chapterId"`
	Chapter       *Chapter    `gorm:"constraint:OnDelete:CASCADE" json:"chapter,omitempty"`
	IsActive      bool        `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (q *MCQQuestion) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID, err = uuid.NewV7()
	}
	return
}
