package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/pkg/llm"
)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

// defaultTemperature matches the sampling temperature the chat UI expects.
const defaultTemperature = 0.7

// OpenRouterProvider talks to any OpenAI-compatible chat-completions
// endpoint. No retry policy; a slow or failing call propagates to the
// caller with only the transport timeout as a bound.
type OpenRouterProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ llm.LLMProvider = &OpenRouterProvider{}

// chatRequest is the OpenAI-compatible payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewOpenRouterProvider builds a client bound to baseURL and a default
// model. An empty API key is a configuration error, not a silent degrade.
func NewOpenRouterProvider(apiKey, baseURL, model string) (*OpenRouterProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is missing or empty: %w", apperrors.ErrConfiguration)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenRouterProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

func (p *OpenRouterProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Model:       p.model,
		Temperature: defaultTemperature,
	}
	for _, o := range options {
		o(opts)
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{Role: role, Content: msg.Content}
	}

	reqBody := chatRequest{
		Model:       opts.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %v: %w", err, apperrors.ErrProvider)
	}

	url := fmt.Sprintf("%s/chat/completions", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %v: %w", err, apperrors.ErrProvider)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %v: %w", err, apperrors.ErrProvider)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s: %w", resp.StatusCode, string(bodyBytes), apperrors.ErrProvider)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %v: %w", err, apperrors.ErrProvider)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("chat completion error: %s: %w", chatResp.Error.Message, apperrors.ErrProvider)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in chat completion: %w", apperrors.ErrProvider)
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (p *OpenRouterProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
