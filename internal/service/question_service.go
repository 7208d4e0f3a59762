package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/ostrx/formforge/internal/dto"
	"github.com/ostrx/formforge/internal/model"
	"github.com/ostrx/formforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	GenerateAdditionalQuestions(ctx context.Context, formUID string, req dto.GenerateQuestionsRequest) ([]dto.QuestionResponse, error)
	AddManualField(req dto.AddFieldRequest) (*dto.QuestionResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	formRepo     repository.FormRepository
	llm          GeminiLLMService
}

func NewQuestionService(questionRepo repository.QuestionRepository, formRepo repository.FormRepository, llm GeminiLLMService) QuestionService {
	return &questionService{questionRepo: questionRepo, formRepo: formRepo, llm: llm}
}

// GenerateAdditionalQuestions asks the model for more questions on an
// existing form. The prompt falls back to the form's originating prompt and
// the existing question texts are passed as a dedup hint. Both the one-click
// "generate more" flow and the free-prompt dialog land here.
func (s *questionService) GenerateAdditionalQuestions(ctx context.Context, formUID string, req dto.GenerateQuestionsRequest) ([]dto.QuestionResponse, error) {
	form, err := s.formRepo.FindByUIDWithQuestions(formUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, formUID)
		}
		return nil, err
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = form.UserPrompt
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: no prompt available for question generation", ErrInvalidInput)
	}

	hint := req.ExistingQuestions
	if hint == "" {
		texts := make([]string, 0, len(form.Questions))
		for _, q := range form.Questions {
			texts = append(texts, q.Text)
		}
		hint = strings.Join(texts, ",")
	}

	raw, err := s.llm.GenerateAdditionalQuestions(ctx, prompt, hint)
	if err != nil {
		return nil, err
	}

	descriptors, err := DecodeQuestionDescriptors(ExtractJSON(raw))
	if err != nil {
		log.Error().Err(err).Str("formUID", formUID).Str("raw", raw).Msg("Failed to decode generated questions")
		return nil, err
	}

	questions := questionsFromDescriptors(form.ID, descriptors)
	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Str("formUID", formUID).Msg("Failed to persist generated questions")
		return nil, fmt.Errorf("database error creating questions: %w", err)
	}

	var resp []dto.QuestionResponse
	copier.Copy(&resp, &questions)
	log.Info().Str("formUID", formUID).Int("count", len(questions)).Msg("Additional questions generated")
	return resp, nil
}

// AddManualField inserts one fully-specified question from the editor UI.
// The client-side rules are re-checked here: non-empty text, and at least
// two non-blank options for choice types.
func (s *questionService) AddManualField(req dto.AddFieldRequest) (*dto.QuestionResponse, error) {
	if strings.TrimSpace(req.QuestionText) == "" {
		return nil, fmt.Errorf("%w: question text must not be empty", ErrInvalidInput)
	}
	if !model.IsValidFieldType(req.FieldType) {
		return nil, fmt.Errorf("%w: unknown field type %q", ErrInvalidInput, req.FieldType)
	}

	form, err := s.resolveForm(req)
	if err != nil {
		return nil, err
	}

	question := model.Question{
		FormID:    form.ID,
		Text:      req.QuestionText,
		FieldType: req.FieldType,
	}

	if model.IsChoiceType(req.FieldType) {
		options := make([]model.FieldOption, 0, len(req.Options))
		for _, opt := range req.Options {
			if strings.TrimSpace(opt) == "" {
				continue
			}
			// text and value are identical for manually added options
			options = append(options, model.FieldOption{Text: opt, Value: opt})
		}
		if len(options) < 2 {
			return nil, fmt.Errorf("%w: choice questions require at least two options", ErrInvalidInput)
		}
		question.FieldOptions = options
	}

	if err := s.questionRepo.CreateWithOptions(&question); err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("Failed to insert manual field")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	log.Info().Uint("formID", form.ID).Str("fieldType", req.FieldType).Msg("Manual field added")
	return &resp, nil
}

func (s *questionService) resolveForm(req dto.AddFieldRequest) (*model.Form, error) {
	var form *model.Form
	var err error
	switch {
	case req.FormUID != "":
		form, err = s.formRepo.FindByUID(req.FormUID)
	case req.FormID != 0:
		form, err = s.formRepo.FindByID(req.FormID)
	default:
		return nil, fmt.Errorf("%w: a form identifier is required", ErrInvalidInput)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: form not found", ErrNotFound)
		}
		return nil, err
	}
	if req.FormID != 0 && form.ID != req.FormID {
		return nil, fmt.Errorf("%w: form id does not match form uid", ErrInvalidInput)
	}
	return form, nil
}
