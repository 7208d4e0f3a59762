package dto

import "time"

type FieldOptionResponse struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

type QuestionResponse struct {
	ID           uint                  `json:"id"`
	FormID       uint                  `json:"form_id"`
	Text         string                `json:"text"`
	FieldType    string                `json:"field_type"`
	FieldOptions []FieldOptionResponse `json:"field_options,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type FormResponse struct {
	ID          uint               `json:"id"`
	FormUID     string             `json:"form_uid"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	UserPrompt  string             `json:"user_prompt,omitempty"`
	Published   bool               `json:"published"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// FormSummaryResponse backs the listing view.
type FormSummaryResponse struct {
	ID            uint      `json:"id"`
	FormUID       string    `json:"form_uid"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Published     bool      `json:"published"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// GenerateFormResponse is the generation action envelope: message is
// "success" with a populated data field, or an error text on its own.
type GenerateFormResponse struct {
	Message string            `json:"message"`
	Data    *GenerateFormData `json:"data,omitempty"`
}

type GenerateFormData struct {
	FormID string `json:"formId"`
}

// AddFieldResponse keeps the success/message/question/error shape of the
// original manual field endpoint.
type AddFieldResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Question *QuestionResponse `json:"question,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type AnswerResponse struct {
	ID            uint    `json:"id"`
	QuestionID    uint    `json:"question_id"`
	FieldOptionID *uint   `json:"field_option_id,omitempty"`
	Value         *string `json:"value,omitempty"`
}

type SubmissionResponse struct {
	ID          uint             `json:"id"`
	FormID      uint             `json:"form_id"`
	SubmittedAt time.Time        `json:"submitted_at"`
	Answers     []AnswerResponse `json:"answers,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
