package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"witt-interpreter-be/internal/pkg/logger"
	"witt-interpreter-be/pkg/events"
	"witt-interpreter-be/pkg/nats"
)

type IPublisherService interface {
	// Publish fans an event out to the in-process progress topic and, when a
	// NATS connection is configured, to the external bus. Delivery is best
	// effort; failures are logged, never surfaced to the caller's run.
	Publish(ctx context.Context, event events.Event)
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	external  *nats.Publisher
	logger    logger.ILogger
}

func NewPublisherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	external *nats.Publisher,
	sysLogger logger.ILogger,
) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		external:  external,
		logger:    sysLogger,
	}
}

type progressEnvelope struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

func (p *publisherService) Publish(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(progressEnvelope{
		Type: event.EventType(),
		Data: event.Payload(),
	})
	if err != nil {
		p.logger.Error("Publisher", "Failed to marshal event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Publisher", "Failed to publish progress event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}

	if p.external != nil {
		if err := p.external.Publish(ctx, event); err != nil {
			p.logger.Warn("Publisher", "External bus publish failed", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
}
