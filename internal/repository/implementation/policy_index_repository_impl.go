package implementation

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/jsonstore"
)

type PolicyIndexRepositoryImpl struct {
	store *jsonstore.Store
}

func NewPolicyIndexRepository(store *jsonstore.Store) contract.PolicyIndexRepository {
	return &PolicyIndexRepositoryImpl{store: store}
}

func (r *PolicyIndexRepositoryImpl) ReadSource(ctx context.Context) (string, error) {
	return r.store.ReadText(DocPolicyText)
}

func (r *PolicyIndexRepositoryImpl) Save(ctx context.Context, index *entity.PolicyIndex) error {
	return r.store.Write(DocPolicyIndex, index)
}

func (r *PolicyIndexRepositoryImpl) Get(ctx context.Context) (*entity.PolicyIndex, error) {
	var index entity.PolicyIndex
	if err := r.store.Read(DocPolicyIndex, &index); err != nil {
		return nil, err
	}
	return &index, nil
}
