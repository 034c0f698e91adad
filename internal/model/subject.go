package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject belongs to both a Board and a Class. The board reference is stored
// independently of Class.BoardID; create/update verifies they agree.
type Subject struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"type:text" json:"imageUrl,omitempty"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index" json:"boardId"`
	Board       *Board    `gorm:"constraint:OnDelete:CASCADE" json:"board,omitempty"`
	ClassID     uuid.UUID `gorm:"type:uuid;not null;index" json:"classId"`
	Class       *Class    `gorm:"constraint:OnDelete:CASCADE" json:"class,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}
