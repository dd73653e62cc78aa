package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
)

type PolicyRepository interface {
	// FindAll returns every policy; a missing document yields an empty set.
	FindAll(ctx context.Context) ([]entity.Policy, error)

	Create(ctx context.Context, policy *entity.Policy) error

	// Update replaces the policy with the matching id; ErrNotFound when
	// the id is absent.
	Update(ctx context.Context, policy *entity.Policy) error

	// Delete removes the policy with the matching id; ErrNotFound when
	// the id is absent. The set is left unchanged in that case.
	Delete(ctx context.Context, id string) error
}
