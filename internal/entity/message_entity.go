package entity

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is one chat turn in the stored history. The list is append-only
// during a session and truncated to the newest 50 entries on save.
type Message struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
