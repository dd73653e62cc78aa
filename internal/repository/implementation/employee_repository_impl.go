package implementation

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/jsonstore"
)

type EmployeeRepositoryImpl struct {
	store *jsonstore.Store
}

func NewEmployeeRepository(store *jsonstore.Store) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{store: store}
}

func (r *EmployeeRepositoryImpl) Get(ctx context.Context) (*entity.Employee, error) {
	var employee entity.Employee
	if err := r.store.Read(DocEmployee, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) Replace(ctx context.Context, employee *entity.Employee) error {
	return r.store.Write(DocEmployee, employee)
}
