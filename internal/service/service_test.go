package service

import (
	"context"
	"testing"

	"github.com/ostrx/formforge/internal/model"
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
	// a single connection keeps the in-memory database alive across queries
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

// stubLLM is a canned GeminiLLMService for tests. It records the arguments
// it was called with.
type stubLLM struct {
	draft         string
	draftErr      error
	questions     string
	questionsErr  error
	draftCalls    int
	questionCalls int
	lastPrompt    string
	lastHint      string
}

func (s *stubLLM) GenerateFormDraft(_ context.Context, description string) (string, error) {
	s.draftCalls++
	s.lastPrompt = description
	return s.draft, s.draftErr
}

func (s *stubLLM) GenerateAdditionalQuestions(_ context.Context, prompt string, existingQuestions string) (string, error) {
	s.questionCalls++
	s.lastPrompt = prompt
	s.lastHint = existingQuestions
	return s.questions, s.questionsErr
}
