package factory

import (
	"fmt"

	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/pkg/llm"
	"hr-chatbot-be/pkg/llm/ollama"
	"hr-chatbot-be/pkg/llm/openrouter"
)

// NewLLMProvider selects the chat backend from config. "openrouter" is the
// default hosted provider; "ollama" runs against a local model server.
func NewLLMProvider(providerType, modelName, openRouterKey, openRouterBaseURL, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "openrouter", "":
		return openrouter.NewOpenRouterProvider(openRouterKey, openRouterBaseURL, modelName)
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q: %w", providerType, apperrors.ErrConfiguration)
	}
}
