package dto

import "hr-chatbot-be/internal/entity"

type ParseLeaveRequest struct {
	Message string `json:"message" validate:"required"`
	Model   string `json:"model" validate:"required"`
}

// ParsedLeaveResponse mirrors the extraction prompt's JSON schema; the
// snake_case keys are part of the UI contract.
type ParsedLeaveResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Type      string `json:"type"`
	Note      string `json:"note"`
}

type CreateLeaveRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Days      int    `json:"days" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,eq=annual"`
	Note      string `json:"note"`
}

type CreateLeaveResponse struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

type LeaveCasesResponse struct {
	Cases []entity.LeaveCase `json:"cases"`
}
