package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/ostrx/formforge/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService produces raw model completions for the form workflows.
// Callers extract and decode the JSON payload themselves.
type GeminiLLMService interface {
	GenerateFormDraft(ctx context.Context, description string) (string, error)
	GenerateAdditionalQuestions(ctx context.Context, prompt string, existingQuestions string) (string, error)
}

type geminiLLMService struct {
	client  *genai.GenerativeModel
	cfg     *config.Config
	timeout time.Duration
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil, timeout: timeout}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	return &geminiLLMService{client: model, cfg: cfg, timeout: timeout}, nil
}

func (s *geminiLLMService) GenerateFormDraft(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf("%s Based on the description, generate a survey object with 3 fields: "+
		"name(string) for the form, description(string) of the form and a questions array where "+
		"every element has 2 fields: text and fieldType. Use only 'Textarea' as the fieldType for "+
		"all questions and return it in json format. Include empty fieldOptions array for each "+
		"question. Generate at least 10 questions covering all required sections.", description)
	return s.generate(ctx, prompt)
}

func (s *geminiLLMService) GenerateAdditionalQuestions(ctx context.Context, prompt string, existingQuestions string) (string, error) {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString(" Generate additional survey questions for this form and return them as a json array ")
	sb.WriteString("where every element has 2 fields: text and fieldType. Use only 'Textarea' as the ")
	sb.WriteString("fieldType and include an empty fieldOptions array for each question.")
	if existingQuestions != "" {
		sb.WriteString(" The form already contains the following questions, do not repeat them: ")
		sb.WriteString(existingQuestions)
	}
	return s.generate(ctx, sb.String())
}

func (s *geminiLLMService) generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", ErrUpstreamUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API call failed")
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("%w: gemini returned no content", ErrMalformedResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: gemini returned no text content", ErrMalformedResponse)
	}
	return sb.String(), nil
}
