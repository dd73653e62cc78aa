package dto

import "hr-chatbot-be/internal/entity"

type ChatRequest struct {
	Message     string             `json:"message" validate:"required"`
	Model       string             `json:"model" validate:"required"`
	UserInfo    string             `json:"user_info,omitempty"`
	HistoryChat []ChatTurnDTO      `json:"history_chat,omitempty" validate:"dive"`
	Policies    []PolicyContextDTO `json:"policies,omitempty" validate:"dive"`
}

// ChatTurnDTO is one prior turn the caller wants included in the prompt.
type ChatTurnDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// PolicyContextDTO lets the caller override the stored policy set for one
// turn without persisting anything.
type PolicyContextDTO struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ChatResponse struct {
	Response      string `json:"response"`
	IsNeedTimeOff bool   `json:"isNeedTimeOff"`
	Reasoning     string `json:"reasoning"`
}

type MessagesResponse struct {
	Messages []entity.Message `json:"messages"`
}

type ResetChatResponse struct {
	Message string `json:"message"`
}

type SimpleChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type SimpleChatResponse struct {
	Response string `json:"response"`
}
