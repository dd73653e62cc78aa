package service

import (
	"context"
	"strings"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/pkg/llm"
)

type IGreetingService interface {
	Greet(ctx context.Context, request *dto.GreetingRequest) (*dto.GreetingResponse, error)
}

type greetingService struct {
	llmProvider llm.LLMProvider
}

func NewGreetingService(llmProvider llm.LLMProvider) IGreetingService {
	return &greetingService{llmProvider: llmProvider}
}

// Greet makes one model call to produce a personalized Vietnamese
// greeting from the user's profile text.
func (gs *greetingService) Greet(ctx context.Context, request *dto.GreetingRequest) (*dto.GreetingResponse, error) {
	systemPrompt := strings.Replace(
		constant.GreetingSystemPrompt,
		constant.PromptUserInfoPlaceholder,
		request.UserInfo,
		1,
	)

	greeting, err := gs.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: constant.GreetingUserPrompt},
	}, llm.WithModel(constant.GreetingModel))
	if err != nil {
		return nil, err
	}

	return &dto.GreetingResponse{Greeting: greeting}, nil
}
