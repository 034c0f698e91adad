package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class type levels. The set is the union of the two historical form
// variants; both PRIMARY..POSTGRADUATE and INTERMEDIATE are accepted.
const (
	ClassTypePrimary         = "PRIMARY"
	ClassTypeSecondary       = "SECONDARY"
	ClassTypeHigherSecondary = "HIGHER_SECONDARY"
	ClassTypeIntermediate    = "INTERMEDIATE"
	ClassTypeUndergraduate   = "UNDERGRADUATE"
	ClassTypePostgraduate    = "POSTGRADUATE"
)

var classTypes = map[string]bool{
	ClassTypePrimary:         true,
	ClassTypeSecondary:       true,
	ClassTypeHigherSecondary: true,
	ClassTypeIntermediate:    true,
	ClassTypeUndergraduate:   true,
	ClassTypePostgraduate:    true,
}

// ValidClassType reports whether t is a recognized class level.
func ValidClassType(t string) bool {
	return classTypes[t]
}

type Class struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index" json:"boardId"`
	Board     *Board    `gorm:"constraint:OnDelete:CASCADE" json:"board,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}
