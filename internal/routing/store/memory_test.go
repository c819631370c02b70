package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedrouting/internal/domain"
)

func decision(caseID string) Decision {
	return Decision{
		ID:           uuid.New(),
		CaseID:       caseID,
		CaseType:     domain.CaseTypePBuc01,
		DocumentID:   "doc-1",
		DocumentType: domain.DocTypeP2000,
		Direction:    domain.DirectionIncoming,
		Unit:         domain.UnitPensionAbroad,
		DecidedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	t.Run("append then list per case", func(t *testing.T) {
		first := decision("case-1")
		second := decision("case-1")
		other := decision("case-2")
		require.NoError(t, s.Append(ctx, first))
		require.NoError(t, s.Append(ctx, second))
		require.NoError(t, s.Append(ctx, other))

		got, err := s.ListByCase(ctx, "case-1")
		require.NoError(t, err)
		assert.Equal(t, []Decision{first, second}, got)
	})

	t.Run("unknown case lists empty", func(t *testing.T) {
		got, err := s.ListByCase(ctx, "case-404")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		got, err := s.ListByCase(ctx, "case-1")
		require.NoError(t, err)
		got[0].CaseID = "mutated"

		again, err := s.ListByCase(ctx, "case-1")
		require.NoError(t, err)
		assert.Equal(t, "case-1", again[0].CaseID)
	})

	t.Run("concurrent appends are safe", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Append(ctx, decision("case-racy"))
			}()
		}
		wg.Wait()

		got, err := s.ListByCase(ctx, "case-racy")
		require.NoError(t, err)
		assert.Len(t, got, 20)
	})
}
