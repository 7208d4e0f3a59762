package model

import (
	"time"

	"gorm.io/gorm"
)

type Form struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	FormUID     string         `json:"form_uid" gorm:"not null;uniqueIndex"` // public identifier, the only one exposed to respondents
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	UserPrompt  string         `json:"user_prompt,omitempty" gorm:"type:text"`
	Published   bool           `json:"published" gorm:"default:false"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Submissions []Submission   `json:"submissions,omitempty" gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
