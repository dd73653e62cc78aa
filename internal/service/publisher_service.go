package service

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	// PublishReindex emits a policy-reindex event; the payload carries
	// the trigger reason for the logs.
	PublishReindex(reason string) error
}

type publisherService struct {
	topic     string
	publisher message.Publisher
}

func NewPublisherService(topic string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topic:     topic,
		publisher: publisher,
	}
}

func (ps *publisherService) PublishReindex(reason string) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte(reason))
	return ps.publisher.Publish(ps.topic, msg)
}
