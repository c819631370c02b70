package consumer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"sedrouting/internal/platform/config"
)

// Message is one consumed record, decoupled from the client library so
// handlers stay testable.
type Message struct {
	Topic     string
	Key       []byte
	Value     []byte
	Partition int32
	Offset    int64
	Timestamp time.Time
}

// Handler processes one message. Returning an error leaves the offset
// unmarked so the record is redelivered after a restart.
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// Consumer runs a consumer group over the configured topics and hands each
// record to the handler.
type Consumer struct {
	client  *kgo.Client
	admin   *kadm.Client
	handler Handler
	logger  *slog.Logger
	topics  []string
}

// New connects a consumer group client for the event topics.
func New(cfg config.Kafka, handler Handler, logger *slog.Logger) (*Consumer, error) {
	topics := []string{cfg.TopicReceived, cfg.TopicSent}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.ConsumeTopics(topics...),
		kgo.AutoCommitMarks(),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &Consumer{
		client:  client,
		admin:   kadm.NewClient(client),
		handler: handler,
		logger:  logger,
		topics:  topics,
	}, nil
}

// Run polls until the context is cancelled. Handler failures are logged
// and the offending record stays uncommitted; polling continues with the
// next record so one poison message cannot stall the group.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error("fetch error",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		})
		fetches.EachRecord(func(rec *kgo.Record) {
			msg := &Message{
				Topic:     rec.Topic,
				Key:       rec.Key,
				Value:     rec.Value,
				Partition: rec.Partition,
				Offset:    rec.Offset,
				Timestamp: rec.Timestamp,
			}
			if err := c.handler.Handle(ctx, msg); err != nil {
				c.logger.Error("message handling failed",
					"topic", rec.Topic,
					"partition", rec.Partition,
					"offset", rec.Offset,
					"error", err,
				)
				return
			}
			c.client.MarkCommitRecords(rec)
		})
	}
}

// Health verifies broker reachability and that the event topics exist.
func (c *Consumer) Health(ctx context.Context) error {
	details, err := c.admin.ListTopics(ctx, c.topics...)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	for _, topic := range c.topics {
		if !details.Has(topic) {
			return fmt.Errorf("topic %s missing", topic)
		}
	}
	return nil
}

// Close flushes marks and releases the client.
func (c *Consumer) Close() {
	c.client.Close()
}
