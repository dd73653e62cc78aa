package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/internal/repository/memory"
)

var employeeIdPattern = regexp.MustCompile(`^EMP\d{3}$`)

func TestEmployeeGetBeforeSeed(t *testing.T) {
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEmployeeSeedThenGet(t *testing.T) {
	svc := NewEmployeeService(memory.NewEmployeeRepository())
	ctx := context.Background()

	seeded, err := svc.Seed(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Employee data randomized successfully", seeded.Message)

	e := seeded.Employee
	assert.NotEmpty(t, e.Name)
	assert.NotEmpty(t, e.Position)
	assert.NotEmpty(t, e.Department)
	assert.Regexp(t, employeeIdPattern, e.EmployeeId)
	assert.Equal(t, 20, e.TotalLeaveDays)
	assert.GreaterOrEqual(t, e.RemainingLeaveDays, 5)
	assert.LessOrEqual(t, e.RemainingLeaveDays, 24)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, e.HireDate)

	got, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, e, got.Employee)
}

func TestEmployeeSeedOverwrites(t *testing.T) {
	repo := memory.NewEmployeeRepository()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	assert.NoError(t, err)

	second, err := svc.Seed(ctx)
	assert.NoError(t, err)

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	// The record is replaced wholesale, never merged.
	assert.Equal(t, second.Employee, *got)
}
