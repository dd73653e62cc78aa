package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/memory"
	"hr-chatbot-be/pkg/ai/leave"
	"hr-chatbot-be/pkg/llm"
)

// scriptedProvider returns canned replies in order and records every call.
type scriptedProvider struct {
	replies []string
	err     error
	calls   [][]llm.Message
	opts    []llm.Options
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls = append(p.calls, history)
	var opts llm.Options
	for _, opt := range options {
		opt(&opts)
	}
	p.opts = append(p.opts, opts)

	if p.err != nil {
		return "", p.err
	}
	idx := len(p.calls) - 1
	if idx >= len(p.replies) {
		idx = len(p.replies) - 1
	}
	return p.replies[idx], nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func newChatFixture(provider *scriptedProvider) (IChatService, *memory.MessageRepository, *memory.LeaveCaseRepository) {
	messageRepo := memory.NewMessageRepository()
	policyRepo := memory.NewPolicyRepository()
	employeeRepo := memory.NewEmployeeRepository()
	leaveRepo := memory.NewLeaveCaseRepository()

	employeeRepo.Replace(context.Background(), &entity.Employee{
		Name:       "Nguyễn Văn An",
		EmployeeId: "EMP001",
	})

	leaveService := NewLeaveService(leave.NewExtractor(provider), employeeRepo, leaveRepo, logger.NewNopLogger())
	chatService := NewChatService(messageRepo, policyRepo, provider, leaveService, logger.NewNopLogger())
	return chatService, messageRepo, leaveRepo
}

func TestSendChatStructuredReply(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{`{"response": "Bạn còn 12 ngày phép.", "is_need_time_off": false, "reasoning": "Hỏi số ngày phép"}`},
	}
	svc, messageRepo, _ := newChatFixture(provider)

	res, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Message: "Tôi còn bao nhiêu ngày phép?",
		Model:   "openai/gpt-4o-mini",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bạn còn 12 ngày phép.", res.Response)
	assert.False(t, res.IsNeedTimeOff)
	assert.Equal(t, "Hỏi số ngày phép", res.Reasoning)
	assert.Equal(t, "openai/gpt-4o-mini", provider.opts[0].Model)

	// Both the user turn and the assistant turn were persisted.
	stored, err := messageRepo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, entity.MessageRoleUser, stored[0].Role)
	assert.Equal(t, "Tôi còn bao nhiêu ngày phép?", stored[0].Content)
	assert.Equal(t, entity.MessageRoleAssistant, stored[1].Role)
}

func TestSendChatUnparseableReplyNeverFlagsTimeOff(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{"Tôi muốn xin nghỉ phép nhưng đây không phải JSON"},
	}
	svc, _, leaveRepo := newChatFixture(provider)

	res, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Message: "Tôi muốn xin nghỉ",
		Model:   "openai/gpt-4o-mini",
	})

	assert.NoError(t, err)
	assert.False(t, res.IsNeedTimeOff)
	assert.Equal(t, "No reasoning provided", res.Reasoning)
	assert.Equal(t, "Tôi muốn xin nghỉ phép nhưng đây không phải JSON", res.Response)

	cases, _ := leaveRepo.FindAll(context.Background())
	assert.Empty(t, cases)
}

func TestSendChatFilesLeaveCase(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{
			`{"response": "Đã ghi nhận yêu cầu nghỉ của bạn.", "is_need_time_off": true, "reasoning": "Yêu cầu nghỉ phép"}`,
			`{"start_date": "2026-09-01", "end_date": "2026-09-03", "days": 3, "type": "annual", "note": "nghỉ mát"}`,
		},
	}
	svc, _, leaveRepo := newChatFixture(provider)

	res, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Message: "Tôi muốn nghỉ mát 3 ngày từ 1/9",
		Model:   "openai/gpt-4o-mini",
	})

	assert.NoError(t, err)
	assert.True(t, res.IsNeedTimeOff)
	assert.True(t, strings.HasSuffix(res.Response, constant.LeaveCaseCreatedNote))

	cases, _ := leaveRepo.FindAll(context.Background())
	assert.Len(t, cases, 1)
	assert.Equal(t, "2026-09-01", cases[0].StartDate)
	assert.Equal(t, 3, cases[0].Days)
	assert.Equal(t, entity.LeaveStatusCreated, cases[0].Status)
	assert.Equal(t, "EMP001", cases[0].EmployeeId)
}

func TestSendChatFailedExtractionDoesNotFailTurn(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{
			`{"response": "Đã ghi nhận.", "is_need_time_off": true, "reasoning": "Yêu cầu nghỉ phép"}`,
			"không trích xuất được",
		},
	}
	svc, _, leaveRepo := newChatFixture(provider)

	res, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Message: "Cho tôi nghỉ",
		Model:   "openai/gpt-4o-mini",
	})

	assert.NoError(t, err)
	assert.True(t, res.IsNeedTimeOff)
	// No case was filed, so the reply carries no created-case note.
	assert.Equal(t, "Đã ghi nhận.", res.Response)

	cases, _ := leaveRepo.FindAll(context.Background())
	assert.Empty(t, cases)
}

func TestSendChatTruncatesHistory(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{`{"response": "OK", "is_need_time_off": false, "reasoning": "r"}`},
	}
	svc, messageRepo, _ := newChatFixture(provider)

	old := make([]entity.Message, 60)
	for i := range old {
		old[i] = entity.Message{
			Id:        fmt.Sprintf("m%d", i),
			Role:      entity.MessageRoleUser,
			Content:   fmt.Sprintf("message %d", i),
			Timestamp: time.Now(),
		}
	}
	messageRepo.ReplaceAll(context.Background(), old)

	_, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Message: "mới nhất",
		Model:   "m",
	})
	assert.NoError(t, err)

	stored, _ := messageRepo.FindAll(context.Background())
	assert.Len(t, stored, maxStoredMessages)
	// The newest turns survive the cut.
	assert.Equal(t, entity.MessageRoleAssistant, stored[len(stored)-1].Role)
	assert.Equal(t, "mới nhất", stored[len(stored)-2].Content)
}

func TestSendChatUsesRequestHistoryAndPolicies(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{`{"response": "OK", "is_need_time_off": false, "reasoning": "r"}`},
	}
	svc, _, _ := newChatFixture(provider)

	_, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Message:  "câu hỏi",
		Model:    "m",
		UserInfo: "Trần Thị Bích, Nhà thiết kế",
		HistoryChat: []dto.ChatTurnDTO{
			{Role: "user", Content: "trước đó"},
			{Role: "assistant", Content: "đã trả lời"},
		},
		Policies: []dto.PolicyContextDTO{
			{Title: "Nghỉ phép năm", Description: "20 ngày"},
		},
	})
	assert.NoError(t, err)

	sent := provider.calls[0]
	assert.Len(t, sent, 4) // system + 2 history turns + new message
	assert.Contains(t, sent[0].Content, "- Nghỉ phép năm: 20 ngày")
	assert.Contains(t, sent[0].Content, "Trần Thị Bích, Nhà thiết kế")
	assert.Equal(t, "trước đó", sent[1].Content)
	assert.Equal(t, "câu hỏi", sent[3].Content)
}

func TestResetChatWritesSingleWelcomeMessage(t *testing.T) {
	provider := &scriptedProvider{replies: []string{""}}
	svc, messageRepo, _ := newChatFixture(provider)

	messageRepo.ReplaceAll(context.Background(), []entity.Message{
		{Id: "a", Role: entity.MessageRoleUser, Content: "cũ"},
		{Id: "b", Role: entity.MessageRoleAssistant, Content: "cũ"},
	})

	res, err := svc.ResetChat(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Chat reset successfully", res.Message)

	stored, _ := messageRepo.FindAll(context.Background())
	assert.Len(t, stored, 1)
	assert.Equal(t, entity.MessageRoleAssistant, stored[0].Role)
	assert.Equal(t, constant.WelcomeMessage, stored[0].Content)
}

func TestSimpleChatReturnsRawText(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"một bài thơ ngắn"}}
	svc, _, _ := newChatFixture(provider)

	got, err := svc.SimpleChat(context.Background(), "viết một bài thơ")

	assert.NoError(t, err)
	assert.Equal(t, "một bài thơ ngắn", got)
	assert.Equal(t, constant.GreetingModel, provider.opts[0].Model)
}
