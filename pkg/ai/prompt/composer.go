package prompt

import (
	"fmt"
	"strings"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/pkg/llm"
)

// Composer fills the system-prompt template and assembles the ordered
// message list sent to the model: system message first, prior turns in
// original order, the new user message last.
type Composer struct {
	template string
	policies []entity.Policy
	userInfo string
}

func NewComposer(template string, policies []entity.Policy, userInfo string) *Composer {
	return &Composer{
		template: template,
		policies: policies,
		userInfo: userInfo,
	}
}

// SystemPrompt substitutes {policies} and {user_info} in the template.
// Empty inputs are replaced with literal sentinels so the model never sees
// a dangling placeholder.
func (c *Composer) SystemPrompt() string {
	policiesText := constant.NoPoliciesSentinel
	if len(c.policies) > 0 {
		lines := make([]string, len(c.policies))
		for i, p := range c.policies {
			lines[i] = fmt.Sprintf("- %s: %s", p.Title, p.Description)
		}
		policiesText = strings.Join(lines, "\n")
	}

	userInfo := c.userInfo
	if strings.TrimSpace(userInfo) == "" {
		userInfo = constant.NoUserInfoSentinel
	}

	processed := strings.Replace(c.template, constant.PromptPolicyPlaceholder, policiesText, 1)
	processed = strings.Replace(processed, constant.PromptUserInfoPlaceholder, userInfo, 1)
	return processed
}

// Build produces the full message list for one chat turn. History roles
// map 1:1 onto the provider's user/assistant roles.
func (c *Composer) Build(history []entity.Message, userMessage string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: c.SystemPrompt(),
	})
	for _, turn := range history {
		messages = append(messages, llm.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	if userMessage != "" {
		messages = append(messages, llm.Message{
			Role:    entity.MessageRoleUser,
			Content: userMessage,
		})
	}
	return messages
}
