package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/dto"
)

func TestGreetSubstitutesUserInfo(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"Chào An! Chúc một ngày tốt lành."}}
	svc := NewGreetingService(provider)

	res, err := svc.Greet(context.Background(), &dto.GreetingRequest{
		UserInfo: "Nguyễn Văn An, Kỹ sư phần mềm, phòng Kỹ thuật",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Chào An! Chúc một ngày tốt lành.", res.Greeting)

	sent := provider.calls[0]
	assert.Len(t, sent, 2)
	assert.Equal(t, "system", sent[0].Role)
	assert.Contains(t, sent[0].Content, "Nguyễn Văn An, Kỹ sư phần mềm, phòng Kỹ thuật")
	assert.NotContains(t, sent[0].Content, constant.PromptUserInfoPlaceholder)
	assert.Equal(t, constant.GreetingUserPrompt, sent[1].Content)

	// The greeting always uses the fixed small model, not a caller choice.
	assert.Equal(t, constant.GreetingModel, provider.opts[0].Model)
}
