package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ostrx/formforge/internal/dto"
	"github.com/ostrx/formforge/internal/model"
	"github.com/ostrx/formforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatedFormDraft(questionCount int) string {
	var qs []string
	for i := 1; i <= questionCount; i++ {
		qs = append(qs, fmt.Sprintf(`{"text":"Question %d?","fieldType":"Textarea","fieldOptions":[]}`, i))
	}
	return fmt.Sprintf("Sure! Here is the survey:\n```json\n{\"name\":\"Customer Satisfaction Survey\",\"description\":\"Tell us how we did.\",\"questions\":[%s]}\n```",
		strings.Join(qs, ","))
}

func TestGenerateFormPersistsFormAndQuestions(t *testing.T) {
	db := setupTestDB(t)
	formRepo := repository.NewFormRepository(db)
	llm := &stubLLM{draft: generatedFormDraft(10)}
	svc := NewFormService(formRepo, llm)

	data, err := svc.GenerateForm(context.Background(), dto.GenerateFormRequest{Description: "Customer satisfaction survey"})
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.NotEmpty(t, data.FormID)
	assert.Equal(t, 1, llm.draftCalls)

	form, err := svc.GetForm(data.FormID)
	require.NoError(t, err)
	assert.Equal(t, "Customer Satisfaction Survey", form.Name)
	assert.Equal(t, "Tell us how we did.", form.Description)
	assert.Equal(t, "Customer satisfaction survey", form.UserPrompt)
	assert.False(t, form.Published)
	require.GreaterOrEqual(t, len(form.Questions), 10)
	assert.Equal(t, "Question 1?", form.Questions[0].Text)
	assert.Equal(t, model.FieldTypeTextarea, form.Questions[0].FieldType)
	assert.Empty(t, form.Questions[0].FieldOptions)
}

func TestGenerateFormUpstreamFailure(t *testing.T) {
	db := setupTestDB(t)
	llm := &stubLLM{draftErr: fmt.Errorf("%w: quota exceeded", ErrUpstreamUnavailable)}
	svc := NewFormService(repository.NewFormRepository(db), llm)

	_, err := svc.GenerateForm(context.Background(), dto.GenerateFormRequest{Description: "anything"})
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))

	var count int64
	db.Model(&model.Form{}).Count(&count)
	assert.Zero(t, count, "no form should be persisted when the AI call fails")
}

func TestGenerateFormMalformedResponse(t *testing.T) {
	db := setupTestDB(t)
	llm := &stubLLM{draft: "I am sorry, I cannot help with that."}
	svc := NewFormService(repository.NewFormRepository(db), llm)

	_, err := svc.GenerateForm(context.Background(), dto.GenerateFormRequest{Description: "anything"})
	assert.True(t, errors.Is(err, ErrMalformedResponse))

	var count int64
	db.Model(&model.Form{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerateFormRejectsEmptyQuestionSet(t *testing.T) {
	db := setupTestDB(t)
	llm := &stubLLM{draft: `{"name":"Empty","description":"d","questions":[]}`}
	svc := NewFormService(repository.NewFormRepository(db), llm)

	_, err := svc.GenerateForm(context.Background(), dto.GenerateFormRequest{Description: "anything"})
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestPublishFormFlipsStatus(t *testing.T) {
	db := setupTestDB(t)
	formRepo := repository.NewFormRepository(db)
	svc := NewFormService(formRepo, &stubLLM{})

	form := model.Form{FormUID: "uid-publish", Name: "F", Questions: []model.Question{{Text: "Q", FieldType: model.FieldTypeInput}}}
	require.NoError(t, formRepo.Create(&form))

	require.NoError(t, svc.PublishForm("uid-publish"))

	got, err := svc.GetForm("uid-publish")
	require.NoError(t, err)
	assert.True(t, got.Published)
}

func TestPublishUnknownFormReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFormService(repository.NewFormRepository(db), &stubLLM{})
	assert.True(t, errors.Is(svc.PublishForm("no-such-uid"), ErrNotFound))
}

func TestDeleteFormCascades(t *testing.T) {
	db := setupTestDB(t)
	formRepo := repository.NewFormRepository(db)
	svc := NewFormService(formRepo, &stubLLM{})

	form := model.Form{
		FormUID: "uid-delete",
		Name:    "F",
		Questions: []model.Question{
			{Text: "Pick one", FieldType: model.FieldTypeMultipleChoice, FieldOptions: []model.FieldOption{
				{Text: "A", Value: "A"}, {Text: "B", Value: "B"},
			}},
			{Text: "Say something", FieldType: model.FieldTypeTextarea},
		},
	}
	require.NoError(t, formRepo.Create(&form))

	require.NoError(t, svc.DeleteForm("uid-delete"))

	_, err := svc.GetForm("uid-delete")
	assert.True(t, errors.Is(err, ErrNotFound))

	var questions, options int64
	db.Model(&model.Question{}).Where("form_id = ?", form.ID).Count(&questions)
	db.Model(&model.FieldOption{}).Count(&options)
	assert.Zero(t, questions)
	assert.Zero(t, options)
}

func TestGetAllFormsReportsQuestionCounts(t *testing.T) {
	db := setupTestDB(t)
	formRepo := repository.NewFormRepository(db)
	svc := NewFormService(formRepo, &stubLLM{})

	require.NoError(t, formRepo.Create(&model.Form{
		FormUID: "uid-a", Name: "A",
		Questions: []model.Question{{Text: "1", FieldType: model.FieldTypeInput}, {Text: "2", FieldType: model.FieldTypeInput}},
	}))
	require.NoError(t, formRepo.Create(&model.Form{FormUID: "uid-b", Name: "B"}))

	forms, err := svc.GetAllForms()
	require.NoError(t, err)
	require.Len(t, forms, 2)

	counts := map[string]int{}
	for _, f := range forms {
		counts[f.FormUID] = f.QuestionCount
	}
	assert.Equal(t, 2, counts["uid-a"])
	assert.Equal(t, 0, counts["uid-b"])
}
