package dto

import "hr-chatbot-be/internal/entity"

type CreatePolicyRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Color       string `json:"color" validate:"required"`
}

type UpdatePolicyRequest struct {
	Id          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Color       string `json:"color" validate:"required"`
}

type PolicyResponse struct {
	Policy entity.Policy `json:"policy"`
}

type PoliciesResponse struct {
	Policies []entity.Policy `json:"policies"`
}

type DeletePolicyResponse struct {
	Success bool `json:"success"`
}

type ReindexResponse struct {
	Message     string `json:"message"`
	ChunksCount int    `json:"chunksCount"`
}
