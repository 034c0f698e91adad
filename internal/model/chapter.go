package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chapter struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Slug          string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	ChapterNumber int       `gorm:"not null" json:"chapterNumber"`
	PDFURL        string    `gorm:"type:text;not null" json:"pdfUrl"`
	ClassID       uuid.UUID `gorm:"type:uuid;not null;index" json:"classId"`
	Class         *Class    `gorm:"constraint:OnDelete:CASCADE" json:"class,omitempty"`
	SubjectID     uuid.UUID `gorm:"type:uuid;not null;index" json:"subjectId"`
	Subject       *Subject  `gorm:"constraint:OnDelete:CASCADE" json:"subject,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Chapter) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}
