package dto

import "hr-chatbot-be/internal/entity"

type EmployeeResponse struct {
	Employee entity.Employee `json:"employee"`
}

type SeedEmployeeResponse struct {
	Message  string          `json:"message"`
	Employee entity.Employee `json:"employee"`
}
