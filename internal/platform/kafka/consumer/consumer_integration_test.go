//go:build integration

package consumer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"sedrouting/internal/platform/config"
	"sedrouting/pkg/testutil/containers"
)

const (
	testTopicReceived = "eessi-sed-received"
	testTopicSent     = "eessi-sed-sent"
)

// capturingHandler records every delivered message.
type capturingHandler struct {
	mu   sync.Mutex
	msgs []Message
}

func (h *capturingHandler) Handle(_ context.Context, msg *Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, *msg)
	return nil
}

func (h *capturingHandler) snapshot() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message{}, h.msgs...)
}

type ConsumerSuite struct {
	suite.Suite
	broker   *containers.RedpandaContainer
	producer *kgo.Client
}

func TestConsumerSuite(t *testing.T) {
	suite.Run(t, new(ConsumerSuite))
}

func (s *ConsumerSuite) SetupSuite() {
	s.broker = containers.NewRedpandaContainer(s.T())

	producer, err := kgo.NewClient(kgo.SeedBrokers(s.broker.Broker))
	s.Require().NoError(err)
	s.producer = producer

	admin := kadm.NewClient(producer)
	_, err = admin.CreateTopics(context.Background(), 1, 1, nil, testTopicReceived, testTopicSent)
	s.Require().NoError(err)
}

func (s *ConsumerSuite) TearDownSuite() {
	if s.producer != nil {
		s.producer.Close()
	}
	if s.broker != nil {
		_ = s.broker.Container.Terminate(context.Background())
	}
}

func (s *ConsumerSuite) newConsumer(handler Handler, group string) *Consumer {
	c, err := New(config.Kafka{
		Brokers:       []string{s.broker.Broker},
		Group:         group,
		TopicReceived: testTopicReceived,
		TopicSent:     testTopicSent,
	}, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	return c
}

func (s *ConsumerSuite) TestDeliversFromBothTopics() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	handler := &capturingHandler{}
	consumer := s.newConsumer(handler, "delivery-test")
	defer consumer.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = consumer.Run(ctx)
	}()

	s.Require().NoError(s.producer.ProduceSync(ctx,
		&kgo.Record{Topic: testTopicReceived, Key: []byte("147729"), Value: []byte(`received`)},
		&kgo.Record{Topic: testTopicSent, Key: []byte("147729"), Value: []byte(`sent`)},
	).FirstErr())

	s.Require().Eventually(func() bool {
		return len(handler.snapshot()) == 2
	}, 20*time.Second, 100*time.Millisecond)

	topics := map[string]string{}
	for _, msg := range handler.snapshot() {
		topics[msg.Topic] = string(msg.Value)
		s.Equal([]byte("147729"), msg.Key)
	}
	s.Equal("received", topics[testTopicReceived])
	s.Equal("sent", topics[testTopicSent])

	cancel()
	<-done
}

func (s *ConsumerSuite) TestHealth() {
	consumer := s.newConsumer(&capturingHandler{}, "health-test")
	defer consumer.Close()

	s.NoError(consumer.Health(context.Background()))
}
