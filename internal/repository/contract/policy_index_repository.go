package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
)

type PolicyIndexRepository interface {
	// ReadSource returns the raw policy text the index is built from.
	ReadSource(ctx context.Context) (string, error)

	// Save overwrites the chunk index snapshot.
	Save(ctx context.Context, index *entity.PolicyIndex) error

	Get(ctx context.Context) (*entity.PolicyIndex, error)
}
