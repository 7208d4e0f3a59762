package repository

import (
	"errors"
	"testing"

	"github.com/ostrx/formforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Form{},
		&model.Question{},
		&model.FieldOption{},
		&model.Submission{},
		&model.Answer{},
	))
	return db
}

func sampleForm(uid string) *model.Form {
	return &model.Form{
		FormUID:     uid,
		Name:        "Sample",
		Description: "A sample form",
		UserPrompt:  "make me a sample form",
		Questions: []model.Question{
			{Text: "First?", FieldType: model.FieldTypeTextarea},
			{Text: "Pick one", FieldType: model.FieldTypeMultipleChoice, FieldOptions: []model.FieldOption{
				{Text: "Red", Value: "Red"},
				{Text: "Blue", Value: "Blue"},
			}},
		},
	}
}

func TestCreateAndReloadRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormRepository(db)

	form := sampleForm("uid-rt")
	require.NoError(t, repo.Create(form))
	assert.NotZero(t, form.ID)
	assert.NotZero(t, form.Questions[0].ID)
	assert.NotZero(t, form.Questions[1].FieldOptions[0].ID)

	got, err := repo.FindByUIDWithQuestions("uid-rt")
	require.NoError(t, err)
	assert.Equal(t, form.Name, got.Name)
	assert.Equal(t, form.Description, got.Description)
	assert.Equal(t, form.UserPrompt, got.UserPrompt)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "First?", got.Questions[0].Text)
	require.Len(t, got.Questions[1].FieldOptions, 2)
	assert.Equal(t, "Red", got.Questions[1].FieldOptions[0].Text)
}

func TestFindByUIDUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormRepository(db)

	_, err := repo.FindByUID("missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSetPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormRepository(db)

	form := sampleForm("uid-pub")
	require.NoError(t, repo.Create(form))

	require.NoError(t, repo.SetPublished("uid-pub", true))
	got, err := repo.FindByUID("uid-pub")
	require.NoError(t, err)
	assert.True(t, got.Published)

	assert.True(t, errors.Is(repo.SetPublished("missing", true), gorm.ErrRecordNotFound))
}

func TestDeleteByUIDCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormRepository(db)

	form := sampleForm("uid-del")
	require.NoError(t, repo.Create(form))

	value := "an answer"
	submission := model.Submission{
		FormID: form.ID,
		Answers: []model.Answer{
			{QuestionID: form.Questions[0].ID, Value: &value},
		},
	}
	require.NoError(t, NewSubmissionRepository(db).Create(&submission))

	require.NoError(t, repo.DeleteByUID("uid-del"))

	var forms, questions, options, submissions, answers int64
	db.Model(&model.Form{}).Count(&forms)
	db.Model(&model.Question{}).Count(&questions)
	db.Model(&model.FieldOption{}).Count(&options)
	db.Model(&model.Submission{}).Count(&submissions)
	db.Model(&model.Answer{}).Count(&answers)
	assert.Zero(t, forms)
	assert.Zero(t, questions)
	assert.Zero(t, options)
	assert.Zero(t, submissions)
	assert.Zero(t, answers)
}

func TestFindAllWithQuestionCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormRepository(db)

	require.NoError(t, repo.Create(sampleForm("uid-1")))
	require.NoError(t, repo.Create(&model.Form{FormUID: "uid-2", Name: "Empty"}))

	results, err := repo.FindAllWithQuestionCount()
	require.NoError(t, err)
	require.Len(t, results, 2)

	counts := map[string]int{}
	for _, r := range results {
		counts[r.FormUID] = r.QuestionCount
	}
	assert.Equal(t, 2, counts["uid-1"])
	assert.Equal(t, 0, counts["uid-2"])
}

func TestCreateWithOptionsIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	formRepo := NewFormRepository(db)
	questionRepo := NewQuestionRepository(db)

	form := &model.Form{FormUID: "uid-q", Name: "F"}
	require.NoError(t, formRepo.Create(form))

	question := &model.Question{
		FormID:    form.ID,
		Text:      "Pick",
		FieldType: model.FieldTypeCheckbox,
		FieldOptions: []model.FieldOption{
			{Text: "A", Value: "A"},
			{Text: "B", Value: "B"},
		},
	}
	require.NoError(t, questionRepo.CreateWithOptions(question))

	got, err := questionRepo.FindByID(question.ID)
	require.NoError(t, err)
	assert.Len(t, got.FieldOptions, 2)
}
