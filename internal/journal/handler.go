package journal

import (
	"context"
	"log/slog"

	"sedrouting/internal/domain"
	"sedrouting/internal/platform/kafka/consumer"
)

// TopicHandler adapts the service to the message bus: the topic a record
// arrived on decides the event direction. Undecodable payloads are logged
// and committed; redelivery cannot fix them.
type TopicHandler struct {
	service  *Service
	logger   *slog.Logger
	received string
	sent     string
}

// NewTopicHandler maps the two event topics onto directions.
func NewTopicHandler(service *Service, logger *slog.Logger, receivedTopic, sentTopic string) *TopicHandler {
	return &TopicHandler{
		service:  service,
		logger:   logger,
		received: receivedTopic,
		sent:     sentTopic,
	}
}

// Handle implements consumer.Handler.
func (h *TopicHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	ev, err := DecodeEvent(msg.Value)
	if err != nil {
		h.logger.Error("skipping undecodable event",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}

	direction := domain.DirectionIncoming
	if msg.Topic == h.sent {
		direction = domain.DirectionOutgoing
	}
	return h.service.HandleEvent(ctx, ev, direction)
}

var _ consumer.Handler = (*TopicHandler)(nil)
