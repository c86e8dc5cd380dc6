package websocket

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"witt-interpreter-be/internal/pkg/logger"
)

// Bridge routes progress events from the in-process topic to the watchers of
// the run each event belongs to.
type Bridge struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *Hub
	logger    logger.ILogger
}

func NewBridge(pubSub *gochannel.GoChannel, topicName string, hub *Hub, log logger.ILogger) *Bridge {
	return &Bridge{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
	}
}

func (b *Bridge) Run(ctx context.Context) error {
	messages, err := b.pubSub.Subscribe(ctx, b.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var envelope struct {
				Type string `json:"type"`
				Data struct {
					RunId string `json:"run_id"`
				} `json:"data"`
			}
			if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
				b.logger.Warn("Bridge", "Malformed progress event", map[string]interface{}{"error": err.Error()})
				msg.Ack()
				continue
			}

			runID, err := uuid.Parse(envelope.Data.RunId)
			if err != nil {
				msg.Ack()
				continue
			}

			b.hub.Send(runID, msg.Payload)
			msg.Ack()
		}
	}()

	return nil
}
