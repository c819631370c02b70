package journal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedrouting/internal/documents"
	"sedrouting/internal/domain"
	"sedrouting/internal/platform/kafka/consumer"
	"sedrouting/internal/routing"
	"sedrouting/internal/routing/store"
)

const (
	topicReceived = "eessi-sed-received"
	topicSent     = "eessi-sed-sent"
)

func newHandlerFixture(t *testing.T) (*TopicHandler, *store.InMemoryStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	decisions := store.NewInMemory()
	svc := New(
		&fakeFetcher{docs: map[string][]documents.Stored{}},
		nil, nil,
		routing.New(nil, logger),
		decisions,
		testMetrics(),
		logger,
		time.Second,
	)
	return NewTopicHandler(svc, logger, topicReceived, topicSent), decisions
}

func TestTopicHandlerDirections(t *testing.T) {
	payload := []byte(`{"caseId":"147729","caseType":"P_BUC_05","documentId":"doc-1","documentType":"X008"}`)

	tests := []struct {
		topic string
		want  domain.Direction
	}{
		{topicReceived, domain.DirectionIncoming},
		{topicSent, domain.DirectionOutgoing},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			h, decisions := newHandlerFixture(t)
			err := h.Handle(context.Background(), &consumer.Message{Topic: tt.topic, Value: payload})
			require.NoError(t, err)

			got, err := decisions.ListByCase(context.Background(), "147729")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Direction)
		})
	}
}

func TestTopicHandlerCommitsUndecodablePayloads(t *testing.T) {
	h, decisions := newHandlerFixture(t)

	for _, payload := range [][]byte{
		[]byte(`{not json`),
		[]byte(`{"caseType":"P_BUC_01"}`), // missing ids
	} {
		err := h.Handle(context.Background(), &consumer.Message{Topic: topicReceived, Value: payload})
		assert.NoError(t, err, "payload %s must be committed, not redelivered", payload)
	}

	got, err := decisions.ListByCase(context.Background(), "147729")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeEvent(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		ev, err := DecodeEvent([]byte(`{
			"caseId": "147729",
			"caseType": "P_BUC_01",
			"documentId": "doc-1",
			"documentType": "P2000",
			"nationalId": "04075800075"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "147729", ev.CaseID)
		assert.Equal(t, domain.DocTypeP2000, ev.TriggeringType())
		assert.Equal(t, "04075800075", ev.NationalID)
	})

	t.Run("missing case id", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`{"documentId":"doc-1"}`))
		assert.Error(t, err)
	})

	t.Run("missing document id", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`{"caseId":"147729"}`))
		assert.Error(t, err)
	})
}
