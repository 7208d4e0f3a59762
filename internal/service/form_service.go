package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ostrx/formforge/internal/dto"
	"github.com/ostrx/formforge/internal/model"
	"github.com/ostrx/formforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FormService interface {
	GenerateForm(ctx context.Context, req dto.GenerateFormRequest) (*dto.GenerateFormData, error)
	GetForm(uid string) (*dto.FormResponse, error)
	GetAllForms() ([]dto.FormSummaryResponse, error)
	PublishForm(uid string) error
	DeleteForm(uid string) error
}

type formService struct {
	formRepo repository.FormRepository
	llm      GeminiLLMService
}

func NewFormService(formRepo repository.FormRepository, llm GeminiLLMService) FormService {
	return &formService{formRepo: formRepo, llm: llm}
}

// GenerateForm asks the model for a full question set from a free-text
// description and persists the result as one new form.
func (s *formService) GenerateForm(ctx context.Context, req dto.GenerateFormRequest) (*dto.GenerateFormData, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrInvalidInput)
	}

	raw, err := s.llm.GenerateFormDraft(ctx, req.Description)
	if err != nil {
		return nil, err
	}

	desc, err := DecodeFormDescriptor(ExtractJSON(raw))
	if err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Failed to decode generated form descriptor")
		return nil, err
	}

	form := model.Form{
		FormUID:     uuid.NewString(),
		Name:        desc.Name,
		Description: desc.Description,
		UserPrompt:  req.Description,
		Questions:   questionsFromDescriptors(0, desc.Questions),
	}

	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("Failed to persist generated form")
		return nil, fmt.Errorf("database error creating form: %w", err)
	}

	log.Info().Str("formUID", form.FormUID).Int("questions", len(form.Questions)).Msg("Form generated")
	return &dto.GenerateFormData{FormID: form.FormUID}, nil
}

func (s *formService) GetForm(uid string) (*dto.FormResponse, error) {
	form, err := s.formRepo.FindByUIDWithQuestions(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, uid)
		}
		return nil, err
	}
	var resp dto.FormResponse
	copier.Copy(&resp, form)
	return &resp, nil
}

func (s *formService) GetAllForms() ([]dto.FormSummaryResponse, error) {
	results, err := s.formRepo.FindAllWithQuestionCount()
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.FormSummaryResponse, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, dto.FormSummaryResponse{
			ID:            r.ID,
			FormUID:       r.FormUID,
			Name:          r.Name,
			Description:   r.Description,
			Published:     r.Published,
			QuestionCount: r.QuestionCount,
			CreatedAt:     r.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *formService) PublishForm(uid string) error {
	if err := s.formRepo.SetPublished(uid, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: form %s", ErrNotFound, uid)
		}
		return err
	}
	log.Info().Str("formUID", uid).Msg("Form published")
	return nil
}

func (s *formService) DeleteForm(uid string) error {
	if err := s.formRepo.DeleteByUID(uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: form %s", ErrNotFound, uid)
		}
		return err
	}
	log.Info().Str("formUID", uid).Msg("Form deleted")
	return nil
}

// questionsFromDescriptors maps decoded descriptors to rows. formID may be
// zero when the questions are created through the parent form association.
func questionsFromDescriptors(formID uint, descriptors []QuestionDescriptor) []model.Question {
	questions := make([]model.Question, 0, len(descriptors))
	for _, d := range descriptors {
		q := model.Question{
			FormID:    formID,
			Text:      d.Text,
			FieldType: d.FieldType,
		}
		if model.IsChoiceType(d.FieldType) {
			for _, opt := range d.FieldOptions {
				value := opt.Value
				if value == "" {
					value = opt.Text
				}
				q.FieldOptions = append(q.FieldOptions, model.FieldOption{Text: opt.Text, Value: value})
			}
		}
		questions = append(questions, q)
	}
	return questions
}
