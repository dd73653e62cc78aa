package implementation

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/jsonstore"
)

type LeaveCaseRepositoryImpl struct {
	store *jsonstore.Store
}

func NewLeaveCaseRepository(store *jsonstore.Store) contract.LeaveCaseRepository {
	return &LeaveCaseRepositoryImpl{store: store}
}

func (r *LeaveCaseRepositoryImpl) Append(ctx context.Context, leaveCase *entity.LeaveCase) error {
	return jsonstore.Append(r.store, DocLeaveCases, *leaveCase)
}

func (r *LeaveCaseRepositoryImpl) FindAll(ctx context.Context) ([]entity.LeaveCase, error) {
	var cases []entity.LeaveCase
	if err := r.store.Read(DocLeaveCases, &cases); err != nil {
		if apperrors.IsNotFound(err) {
			return []entity.LeaveCase{}, nil
		}
		return nil, err
	}
	return cases, nil
}
