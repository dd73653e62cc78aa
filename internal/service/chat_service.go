package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/ai/interpreter"
	"hr-chatbot-be/pkg/ai/prompt"
	"hr-chatbot-be/pkg/llm"
)

// maxStoredMessages bounds the persisted history; the list is truncated
// to the newest entries on every save.
const maxStoredMessages = 50

type IChatService interface {
	GetMessages(ctx context.Context) (*dto.MessagesResponse, error)
	ResetChat(ctx context.Context) (*dto.ResetChatResponse, error)
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	SimpleChat(ctx context.Context, prompt string) (string, error)
}

// chatService sequences one chat turn: compose prompt, invoke the model,
// interpret the reply, optionally file a leave case, persist history.
type chatService struct {
	messageRepo  contract.MessageRepository
	policyRepo   contract.PolicyRepository
	llmProvider  llm.LLMProvider
	leaveService ILeaveService
	log          logger.ILogger
}

func NewChatService(
	messageRepo contract.MessageRepository,
	policyRepo contract.PolicyRepository,
	llmProvider llm.LLMProvider,
	leaveService ILeaveService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		messageRepo:  messageRepo,
		policyRepo:   policyRepo,
		llmProvider:  llmProvider,
		leaveService: leaveService,
		log:          log,
	}
}

func (cs *chatService) GetMessages(ctx context.Context) (*dto.MessagesResponse, error) {
	messages, err := cs.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MessagesResponse{Messages: messages}, nil
}

func (cs *chatService) ResetChat(ctx context.Context) (*dto.ResetChatResponse, error) {
	welcome := []entity.Message{
		{
			Id:        uuid.NewString(),
			Role:      entity.MessageRoleAssistant,
			Content:   constant.WelcomeMessage,
			Timestamp: time.Now().UTC(),
		},
	}
	if err := cs.messageRepo.ReplaceAll(ctx, welcome); err != nil {
		return nil, err
	}
	return &dto.ResetChatResponse{Message: "Chat reset successfully"}, nil
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	history, err := cs.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userMessage := entity.Message{
		Id:        uuid.NewString(),
		Role:      entity.MessageRoleUser,
		Content:   request.Message,
		Timestamp: now,
	}

	composer := prompt.NewComposer(
		constant.HRAssistantSystemPrompt,
		cs.resolvePolicies(ctx, request),
		request.UserInfo,
	)
	messages := composer.Build(cs.priorTurns(request), request.Message)

	raw, err := cs.llmProvider.Chat(ctx, messages, llm.WithModel(request.Model))
	if err != nil {
		return nil, err
	}

	reply := interpreter.Interpret(raw, interpreter.ModeStructured)

	responseText := reply.Response
	if reply.IsNeedTimeOff {
		// Fire-and-forget relative to the chat reply: a failed extraction
		// or append never fails the turn.
		if cs.leaveService.FileFromMessage(ctx, request.Message, request.Model) {
			responseText += constant.LeaveCaseCreatedNote
		}
	}

	assistantMessage := entity.Message{
		Id:        uuid.NewString(),
		Role:      entity.MessageRoleAssistant,
		Content:   responseText,
		Timestamp: now,
	}

	history = append(history, userMessage, assistantMessage)
	if len(history) > maxStoredMessages {
		history = history[len(history)-maxStoredMessages:]
	}
	if err := cs.messageRepo.ReplaceAll(ctx, history); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Response:      responseText,
		IsNeedTimeOff: reply.IsNeedTimeOff,
		Reasoning:     reply.Reasoning,
	}, nil
}

// SimpleChat bypasses history and interpretation: one system prompt, one
// user prompt, raw text back.
func (cs *chatService) SimpleChat(ctx context.Context, userPrompt string) (string, error) {
	return cs.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.SimpleChatSystemPrompt},
		{Role: "user", Content: userPrompt},
	}, llm.WithModel(constant.GreetingModel))
}

// resolvePolicies prefers the caller-supplied policy context and falls
// back to the stored set. A storage failure only degrades the prompt, it
// does not fail the turn.
func (cs *chatService) resolvePolicies(ctx context.Context, request *dto.ChatRequest) []entity.Policy {
	if len(request.Policies) > 0 {
		policies := make([]entity.Policy, len(request.Policies))
		for i, p := range request.Policies {
			policies[i] = entity.Policy{Title: p.Title, Description: p.Description}
		}
		return policies
	}

	policies, err := cs.policyRepo.FindAll(ctx)
	if err != nil {
		cs.log.Warn("chat", "failed to load policies for prompt", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return policies
}

func (cs *chatService) priorTurns(request *dto.ChatRequest) []entity.Message {
	turns := make([]entity.Message, len(request.HistoryChat))
	for i, t := range request.HistoryChat {
		turns[i] = entity.Message{Role: t.Role, Content: t.Content}
	}
	return turns
}
