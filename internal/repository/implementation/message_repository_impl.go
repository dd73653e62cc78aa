package implementation

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/pkg/jsonstore"
)

type MessageRepositoryImpl struct {
	store *jsonstore.Store
}

func NewMessageRepository(store *jsonstore.Store) contract.MessageRepository {
	return &MessageRepositoryImpl{store: store}
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context) ([]entity.Message, error) {
	var messages []entity.Message
	if err := r.store.Read(DocMessages, &messages); err != nil {
		if apperrors.IsNotFound(err) {
			return []entity.Message{}, nil
		}
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) ReplaceAll(ctx context.Context, messages []entity.Message) error {
	return r.store.Write(DocMessages, messages)
}
