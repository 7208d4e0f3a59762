package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer holds either a chosen option reference or a free-text value,
// never both.
type Answer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SubmissionID  uint           `json:"submission_id" gorm:"not null;index"`
	QuestionID    uint           `json:"question_id" gorm:"not null;index"`
	FieldOptionID *uint          `json:"field_option_id,omitempty" gorm:"index"`
	Value         *string        `json:"value,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
