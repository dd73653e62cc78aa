package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
)

type EmployeeRepository interface {
	// Get returns the single current employee record.
	Get(ctx context.Context) (*entity.Employee, error)

	// Replace overwrites the employee record wholesale.
	Replace(ctx context.Context, employee *entity.Employee) error
}
