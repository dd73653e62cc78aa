// Package memory holds in-memory repository implementations used by
// service tests, mirroring the file-backed contracts without touching disk.
package memory

import (
	"context"
	"fmt"
	"sync"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/apperrors"
)

type MessageRepository struct {
	mu       sync.Mutex
	messages []entity.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *MessageRepository) ReplaceAll(ctx context.Context, messages []entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = make([]entity.Message, len(messages))
	copy(r.messages, messages)
	return nil
}

type EmployeeRepository struct {
	mu       sync.Mutex
	employee *entity.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) Get(ctx context.Context) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.employee == nil {
		return nil, fmt.Errorf("employee record: %w", apperrors.ErrNotFound)
	}
	e := *r.employee
	return &e, nil
}

func (r *EmployeeRepository) Replace(ctx context.Context, employee *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := *employee
	r.employee = &e
	return nil
}

type PolicyRepository struct {
	mu       sync.Mutex
	policies []entity.Policy
}

func NewPolicyRepository() *PolicyRepository {
	return &PolicyRepository{}
}

func (r *PolicyRepository) FindAll(ctx context.Context) ([]entity.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Policy, len(r.policies))
	copy(out, r.policies)
	return out, nil
}

func (r *PolicyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies = append(r.policies, *policy)
	return nil
}

func (r *PolicyRepository) Update(ctx context.Context, policy *entity.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.policies {
		if r.policies[i].Id == policy.Id {
			r.policies[i] = *policy
			return nil
		}
	}
	return fmt.Errorf("policy %s: %w", policy.Id, apperrors.ErrNotFound)
}

func (r *PolicyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.policies {
		if r.policies[i].Id == id {
			r.policies = append(r.policies[:i], r.policies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("policy %s: %w", id, apperrors.ErrNotFound)
}

type LeaveCaseRepository struct {
	mu    sync.Mutex
	cases []entity.LeaveCase
}

func NewLeaveCaseRepository() *LeaveCaseRepository {
	return &LeaveCaseRepository{}
}

func (r *LeaveCaseRepository) Append(ctx context.Context, leaveCase *entity.LeaveCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases = append(r.cases, *leaveCase)
	return nil
}

func (r *LeaveCaseRepository) FindAll(ctx context.Context) ([]entity.LeaveCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.LeaveCase, len(r.cases))
	copy(out, r.cases)
	return out, nil
}

type PolicyIndexRepository struct {
	mu     sync.Mutex
	source string
	index  *entity.PolicyIndex
}

func NewPolicyIndexRepository(source string) *PolicyIndexRepository {
	return &PolicyIndexRepository{source: source}
}

func (r *PolicyIndexRepository) ReadSource(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.source == "" {
		return "", fmt.Errorf("policy text: %w", apperrors.ErrNotFound)
	}
	return r.source, nil
}

func (r *PolicyIndexRepository) Save(ctx context.Context, index *entity.PolicyIndex) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := *index
	r.index = &i
	return nil
}

func (r *PolicyIndexRepository) Get(ctx context.Context) (*entity.PolicyIndex, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == nil {
		return nil, fmt.Errorf("policy index: %w", apperrors.ErrNotFound)
	}
	i := *r.index
	return &i, nil
}
