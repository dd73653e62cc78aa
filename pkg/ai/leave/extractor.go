package leave

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/pkg/ai/interpreter"
	"hr-chatbot-be/pkg/llm"
)

// ParsedLeave is the structured leave request the extraction prompt asks
// the model to emit.
type ParsedLeave struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Days      int    `json:"days" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,eq=annual"`
	Note      string `json:"note"`
}

// Extractor issues the dedicated extraction call and validates the shape
// of whatever the model returns.
type Extractor struct {
	llmProvider llm.LLMProvider
	validate    *validator.Validate
}

func NewExtractor(llmProvider llm.LLMProvider) *Extractor {
	return &Extractor{
		llmProvider: llmProvider,
		validate:    validator.New(),
	}
}

// Extract asks the model for leave fields in the user's message. A model
// reply that is not valid JSON is a ParseError; one that is JSON but does
// not conform (bad dates, non-positive days, unknown type) is a
// ValidationError. Either way no leave case should be created.
func (e *Extractor) Extract(ctx context.Context, message, model string) (*ParsedLeave, error) {
	history := []llm.Message{
		{Role: "system", Content: constant.LeaveParserSystemPrompt},
		{Role: "user", Content: message},
	}

	opts := []llm.Option{}
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}

	raw, err := e.llmProvider.Chat(ctx, history, opts...)
	if err != nil {
		return nil, err
	}

	span, err := interpreter.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var parsed ParsedLeave
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, fmt.Errorf("decode leave fields: %v: %w", err, apperrors.ErrParse)
	}

	if err := e.validate.Struct(parsed); err != nil {
		return nil, fmt.Errorf("leave fields out of shape: %v: %w", err, apperrors.ErrValidation)
	}

	return &parsed, nil
}
