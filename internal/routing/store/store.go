// Package store persists the routing decision log: one record per routed
// event, queryable per case for operational follow-up.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sedrouting/internal/domain"
)

// Decision is one routed event. No person data is persisted, only the
// case coordinates and the outcome.
type Decision struct {
	ID           uuid.UUID
	CaseID       string
	CaseType     domain.CaseType
	DocumentID   string
	DocumentType domain.DocumentType
	Direction    domain.Direction
	Unit         domain.OrgUnit
	DecidedAt    time.Time
}

// Store is the decision log port.
type Store interface {
	Append(ctx context.Context, d Decision) error
	ListByCase(ctx context.Context, caseID string) ([]Decision, error)
}
