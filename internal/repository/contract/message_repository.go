package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
)

type MessageRepository interface {
	// FindAll returns the stored history in insertion order. A missing
	// document yields an empty list, not an error.
	FindAll(ctx context.Context) ([]entity.Message, error)

	// ReplaceAll overwrites the whole history snapshot.
	ReplaceAll(ctx context.Context, messages []entity.Message) error
}
