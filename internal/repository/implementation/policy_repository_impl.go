package implementation

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/jsonstore"
)

const policyCacheKey = "policies"

// PolicyRepositoryImpl backs the policy set with policies.json. Reads go
// through a short-lived in-memory cache; every mutation drops the cache
// entry so the next read hits the file again.
type PolicyRepositoryImpl struct {
	store *jsonstore.Store
	cache *cache.Cache
}

func NewPolicyRepository(store *jsonstore.Store) contract.PolicyRepository {
	return &PolicyRepositoryImpl{
		store: store,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *PolicyRepositoryImpl) FindAll(ctx context.Context) ([]entity.Policy, error) {
	if x, found := r.cache.Get(policyCacheKey); found {
		return x.([]entity.Policy), nil
	}

	var policies []entity.Policy
	if err := r.store.Read(DocPolicies, &policies); err != nil {
		if apperrors.IsNotFound(err) {
			return []entity.Policy{}, nil
		}
		return nil, err
	}

	r.cache.Set(policyCacheKey, policies, cache.DefaultExpiration)
	return policies, nil
}

func (r *PolicyRepositoryImpl) Create(ctx context.Context, policy *entity.Policy) error {
	defer r.cache.Delete(policyCacheKey)
	return jsonstore.Append(r.store, DocPolicies, *policy)
}

func (r *PolicyRepositoryImpl) Update(ctx context.Context, policy *entity.Policy) error {
	defer r.cache.Delete(policyCacheKey)
	return jsonstore.Update(r.store, DocPolicies, func(policies []entity.Policy) ([]entity.Policy, error) {
		for i := range policies {
			if policies[i].Id == policy.Id {
				policies[i] = *policy
				return policies, nil
			}
		}
		return nil, fmt.Errorf("policy %s: %w", policy.Id, apperrors.ErrNotFound)
	})
}

func (r *PolicyRepositoryImpl) Delete(ctx context.Context, id string) error {
	defer r.cache.Delete(policyCacheKey)
	return jsonstore.Update(r.store, DocPolicies, func(policies []entity.Policy) ([]entity.Policy, error) {
		filtered := make([]entity.Policy, 0, len(policies))
		for _, p := range policies {
			if p.Id != id {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == len(policies) {
			return nil, fmt.Errorf("policy %s: %w", id, apperrors.ErrNotFound)
		}
		return filtered, nil
	})
}
