package dto

// GenerateFormRequest carries the natural-language description a whole form
// is generated from.
type GenerateFormRequest struct {
	Description string `json:"description" binding:"required,min=1"`
}

// GenerateQuestionsRequest asks for additional questions on an existing form.
// Prompt falls back to the form's originating prompt when empty, and
// ExistingQuestions is a comma-joined hint the model uses to avoid
// duplicates; the server fills it from storage when the client omits it.
type GenerateQuestionsRequest struct {
	Prompt            string `json:"prompt"`
	ExistingQuestions string `json:"existing_questions"`
}

// AddFieldRequest is the manual field endpoint body. Field names keep the
// original wire contract of POST /api/form/new.
type AddFieldRequest struct {
	FormID       uint     `json:"formId"`
	FormUID      string   `json:"formUID"`
	QuestionText string   `json:"questionText"`
	FieldType    string   `json:"fieldType"`
	Options      []string `json:"options"`
}

// SubmitAnswerRequest is one respondent answer: a chosen option for choice
// questions or a free-text value otherwise.
type SubmitAnswerRequest struct {
	QuestionID    uint    `json:"question_id" binding:"required"`
	FieldOptionID *uint   `json:"field_option_id"`
	Value         *string `json:"value"`
}

type SubmitFormRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" binding:"required,dive"`
}
