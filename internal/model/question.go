package model

import (
	"time"

	"gorm.io/gorm"
)

// Field type tags are persisted values the clients round-trip, so they keep
// the exact spelling of the original form editor.
const (
	FieldTypeInput          = "Input"
	FieldTypeTextarea       = "Textarea"
	FieldTypeMultipleChoice = "MULTIPLE_CHOICE"
	FieldTypeCheckbox       = "CHECKBOX"
)

// IsChoiceType reports whether a field type carries a set of options.
func IsChoiceType(fieldType string) bool {
	return fieldType == FieldTypeMultipleChoice || fieldType == FieldTypeCheckbox
}

// IsValidFieldType reports whether fieldType is one of the known tags.
func IsValidFieldType(fieldType string) bool {
	switch fieldType {
	case FieldTypeInput, FieldTypeTextarea, FieldTypeMultipleChoice, FieldTypeCheckbox:
		return true
	}
	return false
}

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FormID       uint           `json:"form_id" gorm:"not null;index"`
	Text         string         `json:"text" gorm:"type:text;not null"`
	FieldType    string         `json:"field_type" gorm:"not null"`
	FieldOptions []FieldOption  `json:"field_options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
