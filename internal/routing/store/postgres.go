package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"sedrouting/internal/domain"
	"sedrouting/pkg/platform/sentinel"
)

// PostgresStore persists decisions in the routing_decisions table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the decision log table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS routing_decisions (
			id            UUID PRIMARY KEY,
			case_id       TEXT NOT NULL,
			case_type     TEXT NOT NULL,
			document_id   TEXT NOT NULL,
			document_type TEXT NOT NULL,
			direction     TEXT NOT NULL,
			unit          TEXT NOT NULL,
			decided_at    TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS routing_decisions_case_idx ON routing_decisions (case_id);
	`)
	if err != nil {
		return fmt.Errorf("migrate routing_decisions: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, d Decision) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routing_decisions
			(id, case_id, case_type, document_id, document_type, direction, unit, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.CaseID, string(d.CaseType), d.DocumentID, string(d.DocumentType),
		string(d.Direction), d.Unit.Code(), d.DecidedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: decision %s already recorded", sentinel.ErrConflict, d.ID)
	}
	if err != nil {
		return fmt.Errorf("append decision: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCase(ctx context.Context, caseID string) ([]Decision, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, case_id, case_type, document_id, document_type, direction, unit, decided_at
		FROM routing_decisions
		WHERE case_id = $1
		ORDER BY decided_at`,
		caseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var d Decision
		var caseType, docType, direction, unit string
		if err := rows.Scan(&d.ID, &d.CaseID, &caseType, &d.DocumentID, &docType, &direction, &unit, &d.DecidedAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		d.CaseType = domain.CaseType(caseType)
		d.DocumentType = domain.DocumentType(docType)
		d.Direction = domain.Direction(direction)
		d.Unit = domain.OrgUnit(unit)
		out = append(out, d)
	}
	return out, rows.Err()
}
