package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/ostrx/formforge/internal/dto"
	"github.com/ostrx/formforge/internal/model"
	"github.com/ostrx/formforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubmissionService interface {
	SubmitResponses(formUID string, req dto.SubmitFormRequest) (*dto.SubmissionResponse, error)
	GetSubmissions(formUID string) ([]dto.SubmissionResponse, error)
}

type submissionService struct {
	formRepo       repository.FormRepository
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(formRepo repository.FormRepository, submissionRepo repository.SubmissionRepository) SubmissionService {
	return &submissionService{formRepo: formRepo, submissionRepo: submissionRepo}
}

// SubmitResponses persists one respondent's answer set. Answers for
// questions outside the form are skipped with a warning; choice questions
// must be answered with one of their own options, text questions with a
// free-text value, and each answer carries exactly one of the two.
func (s *submissionService) SubmitResponses(formUID string, req dto.SubmitFormRequest) (*dto.SubmissionResponse, error) {
	form, err := s.formRepo.FindByUIDWithQuestions(formUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, formUID)
		}
		return nil, err
	}

	questionMap := make(map[uint]model.Question, len(form.Questions))
	for _, q := range form.Questions {
		questionMap[q.ID] = q
	}

	submission := model.Submission{
		FormID:      form.ID,
		SubmittedAt: time.Now(),
	}

	for _, answer := range req.Answers {
		question, exists := questionMap[answer.QuestionID]
		if !exists {
			log.Warn().Uint("questionID", answer.QuestionID).Str("formUID", formUID).Msg("Answer for a question not part of this form, skipping.")
			continue
		}

		if (answer.FieldOptionID == nil) == (answer.Value == nil) {
			return nil, fmt.Errorf("%w: answer for question %d must carry either an option or a text value", ErrInvalidInput, answer.QuestionID)
		}

		if answer.FieldOptionID != nil {
			if !model.IsChoiceType(question.FieldType) {
				return nil, fmt.Errorf("%w: question %d does not take an option answer", ErrInvalidInput, answer.QuestionID)
			}
			if !optionBelongsToQuestion(question, *answer.FieldOptionID) {
				return nil, fmt.Errorf("%w: option %d does not belong to question %d", ErrInvalidInput, *answer.FieldOptionID, answer.QuestionID)
			}
		} else if model.IsChoiceType(question.FieldType) {
			return nil, fmt.Errorf("%w: question %d requires an option answer", ErrInvalidInput, answer.QuestionID)
		}

		submission.Answers = append(submission.Answers, model.Answer{
			QuestionID:    answer.QuestionID,
			FieldOptionID: answer.FieldOptionID,
			Value:         answer.Value,
		})
	}

	if len(submission.Answers) == 0 {
		return nil, fmt.Errorf("%w: no valid answers for form %s", ErrInvalidInput, formUID)
	}

	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Str("formUID", formUID).Msg("Failed to persist submission")
		return nil, fmt.Errorf("database error creating submission: %w", err)
	}

	var resp dto.SubmissionResponse
	copier.Copy(&resp, &submission)
	log.Info().Str("formUID", formUID).Int("answers", len(submission.Answers)).Msg("Submission recorded")
	return &resp, nil
}

func (s *submissionService) GetSubmissions(formUID string) ([]dto.SubmissionResponse, error) {
	form, err := s.formRepo.FindByUID(formUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, formUID)
		}
		return nil, err
	}

	submissions, err := s.submissionRepo.FindByFormID(form.ID)
	if err != nil {
		return nil, err
	}
	var resp []dto.SubmissionResponse
	copier.Copy(&resp, &submissions)
	return resp, nil
}

func optionBelongsToQuestion(question model.Question, optionID uint) bool {
	for _, opt := range question.FieldOptions {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
