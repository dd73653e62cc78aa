package service

import (
	"context"

	"github.com/google/uuid"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/contract"
)

type IPolicyService interface {
	FindAll(ctx context.Context) (*dto.PoliciesResponse, error)
	Create(ctx context.Context, request *dto.CreatePolicyRequest) (*dto.PolicyResponse, error)
	Update(ctx context.Context, request *dto.UpdatePolicyRequest) (*dto.PolicyResponse, error)
	Delete(ctx context.Context, id string) error
}

type policyService struct {
	policyRepo contract.PolicyRepository
}

func NewPolicyService(policyRepo contract.PolicyRepository) IPolicyService {
	return &policyService{policyRepo: policyRepo}
}

func (ps *policyService) FindAll(ctx context.Context) (*dto.PoliciesResponse, error) {
	policies, err := ps.policyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PoliciesResponse{Policies: policies}, nil
}

func (ps *policyService) Create(ctx context.Context, request *dto.CreatePolicyRequest) (*dto.PolicyResponse, error) {
	policy := entity.Policy{
		Id:          uuid.NewString(),
		Title:       request.Title,
		Description: request.Description,
		Color:       request.Color,
	}
	if err := ps.policyRepo.Create(ctx, &policy); err != nil {
		return nil, err
	}
	return &dto.PolicyResponse{Policy: policy}, nil
}

func (ps *policyService) Update(ctx context.Context, request *dto.UpdatePolicyRequest) (*dto.PolicyResponse, error) {
	policy := entity.Policy{
		Id:          request.Id,
		Title:       request.Title,
		Description: request.Description,
		Color:       request.Color,
	}
	if err := ps.policyRepo.Update(ctx, &policy); err != nil {
		return nil, err
	}
	return &dto.PolicyResponse{Policy: policy}, nil
}

func (ps *policyService) Delete(ctx context.Context, id string) error {
	return ps.policyRepo.Delete(ctx, id)
}
