package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ostrx/formforge/internal/model"
)

// FormDescriptor is the shape the generation prompt asks the model for.
type FormDescriptor struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Questions   []QuestionDescriptor `json:"questions"`
}

type QuestionDescriptor struct {
	Text         string             `json:"text"`
	FieldType    string             `json:"fieldType"`
	FieldOptions []OptionDescriptor `json:"fieldOptions"`
}

type OptionDescriptor struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// ExtractJSON pulls a best-effort JSON payload out of a model completion.
// Priority: interior of the first fenced code block (optionally tagged json),
// then the span from the first '{' or '[' to the matching last '}' or ']',
// then the text unchanged. The array case matters for incremental question
// generation, where the prompt asks for a bare array.
func ExtractJSON(text string) string {
	if inner, ok := fencedBlock(text); ok {
		return inner
	}

	objFirst := strings.Index(text, "{")
	arrFirst := strings.Index(text, "[")
	if arrFirst >= 0 && (objFirst < 0 || arrFirst < objFirst) {
		if last := strings.LastIndex(text, "]"); last > arrFirst {
			return text[arrFirst : last+1]
		}
	}
	if last := strings.LastIndex(text, "}"); objFirst >= 0 && last > objFirst {
		return text[objFirst : last+1]
	}

	return text
}

func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	rest := text[start+3:]
	if strings.HasPrefix(rest, "json") {
		rest = rest[len("json"):]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// DecodeFormDescriptor parses and validates a generated form descriptor.
// Missing name, an empty question list, or a question without text are all
// rejected instead of being persisted as blanks.
func DecodeFormDescriptor(raw string) (*FormDescriptor, error) {
	var desc FormDescriptor
	if err := json.Unmarshal([]byte(raw), &desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(desc.Name) == "" {
		return nil, fmt.Errorf("%w: missing form name", ErrMalformedResponse)
	}
	if len(desc.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions generated", ErrMalformedResponse)
	}
	for i := range desc.Questions {
		if err := normalizeQuestionDescriptor(&desc.Questions[i]); err != nil {
			return nil, err
		}
	}
	return &desc, nil
}

// DecodeQuestionDescriptors parses the incremental-addition response. The
// model is asked for a bare array but sometimes wraps it in an object with a
// "questions" field; anything else is malformed.
func DecodeQuestionDescriptors(raw string) ([]QuestionDescriptor, error) {
	var questions []QuestionDescriptor
	if err := json.Unmarshal([]byte(raw), &questions); err == nil {
		if len(questions) == 0 {
			return nil, fmt.Errorf("%w: empty question array", ErrMalformedResponse)
		}
		for i := range questions {
			if err := normalizeQuestionDescriptor(&questions[i]); err != nil {
				return nil, err
			}
		}
		return questions, nil
	}

	var wrapped struct {
		Questions []QuestionDescriptor `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(wrapped.Questions) == 0 {
		return nil, fmt.Errorf("%w: response is not a question array", ErrMalformedResponse)
	}
	for i := range wrapped.Questions {
		if err := normalizeQuestionDescriptor(&wrapped.Questions[i]); err != nil {
			return nil, err
		}
	}
	return wrapped.Questions, nil
}

func normalizeQuestionDescriptor(q *QuestionDescriptor) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question without text", ErrMalformedResponse)
	}
	if q.FieldType == "" {
		q.FieldType = model.FieldTypeTextarea
	}
	if !model.IsValidFieldType(q.FieldType) {
		return fmt.Errorf("%w: unknown field type %q", ErrMalformedResponse, q.FieldType)
	}
	if model.IsChoiceType(q.FieldType) && len(q.FieldOptions) == 0 {
		return fmt.Errorf("%w: choice question %q has no options", ErrMalformedResponse, q.Text)
	}
	return nil
}
