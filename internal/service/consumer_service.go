package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"hr-chatbot-be/internal/pkg/logger"
)

type IConsumerService interface {
	// Consume processes reindex events until ctx is cancelled.
	Consume(ctx context.Context) error
}

// consumerService rebuilds the policy index whenever a reindex event
// arrives (from the file watcher or policy mutations).
type consumerService struct {
	subscriber   message.Subscriber
	topic        string
	indexService IIndexService
	log          logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topic string,
	indexService IIndexService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topic:        topic,
		indexService: indexService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		result, err := cs.indexService.Reindex(ctx)
		if err != nil {
			cs.log.Warn("indexer", "policy reindex failed", map[string]interface{}{
				"reason": string(msg.Payload),
				"error":  err.Error(),
			})
		} else {
			cs.log.Info("indexer", "policy index rebuilt", map[string]interface{}{
				"reason": string(msg.Payload),
				"chunks": result.ChunksCount,
			})
		}
		msg.Ack()
	}

	return nil
}
