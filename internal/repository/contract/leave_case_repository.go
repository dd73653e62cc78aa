package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
)

type LeaveCaseRepository interface {
	// Append adds one case to the append-only log. Cases are never
	// updated or deleted.
	Append(ctx context.Context, leaveCase *entity.LeaveCase) error

	FindAll(ctx context.Context) ([]entity.LeaveCase, error)
}
