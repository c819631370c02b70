package relation

import (
	"log/slog"

	"sedrouting/internal/domain"
)

// CaseDocument pairs a decoded document with its case-level id, in the
// order the case lists them.
type CaseDocument struct {
	ID       string
	Document *domain.Document
}

// Dispatcher selects and runs the extraction strategy for every document
// in a case. Per-document failures are logged and dropped; they never
// abort the remaining documents.
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher constructs a dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Extract walks the case documents and collects every candidate relation.
// Documents whose type never carries identity data are skipped outright.
func (d *Dispatcher) Extract(caseType domain.CaseType, docs []CaseDocument) []domain.PersonRelation {
	var out []domain.PersonRelation
	for _, cd := range docs {
		if cd.Document == nil {
			continue
		}
		if !cd.Document.Type.MayCarryIdentity() {
			continue
		}
		rels, err := strategyFor(cd.Document.Type)(cd.Document, caseType, cd.ID)
		if err != nil {
			d.logger.Warn("extraction failed for document, skipping",
				"document_id", cd.ID,
				"document_type", cd.Document.Type,
				"case_type", caseType,
				"error", err,
			)
			continue
		}
		out = append(out, rels...)
	}
	return out
}
