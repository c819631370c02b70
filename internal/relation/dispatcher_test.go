package relation

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedrouting/internal/domain"
)

func testDispatcher() *Dispatcher {
	return NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDispatcherExtract(t *testing.T) {
	t.Run("runs the strategy for each document", func(t *testing.T) {
		docs := []CaseDocument{
			{ID: "doc-1", Document: applicantDoc(domain.DocTypeP2000)},
			{ID: "doc-2", Document: withSurvivor(applicantDoc(domain.DocTypeP2100), "01")},
		}
		rels := testDispatcher().Extract(domain.CaseTypePBuc02, docs)
		require.Len(t, rels, 2)
		assert.Equal(t, "doc-1", rels[0].SourceDocumentID)
		assert.Equal(t, "doc-2", rels[1].SourceDocumentID)
	})

	t.Run("types that never carry identity yield nothing", func(t *testing.T) {
		for _, docType := range []domain.DocumentType{
			domain.DocTypeP3000NO, domain.DocTypeX005, domain.DocTypeH001, domain.DocTypeR006,
		} {
			doc := applicantDoc(docType)
			rels := testDispatcher().Extract(domain.CaseTypePBuc01, []CaseDocument{{ID: "doc-1", Document: doc}})
			assert.Empty(t, rels, "type %s", docType)
		}
	})

	t.Run("malformed documents are skipped without aborting the rest", func(t *testing.T) {
		broken := &domain.Document{
			Type:     domain.DocTypeR005,
			Recovery: &domain.DocumentRecovery{Parties: []domain.RecoveryParty{{Status: "avdod"}}},
		}
		docs := []CaseDocument{
			{ID: "doc-1", Document: broken},
			{ID: "doc-2", Document: applicantDoc(domain.DocTypeP2000)},
		}
		rels := testDispatcher().Extract(domain.CaseTypePBuc01, docs)
		require.Len(t, rels, 1)
		assert.Equal(t, "doc-2", rels[0].SourceDocumentID)
	})

	t.Run("nil documents are skipped", func(t *testing.T) {
		rels := testDispatcher().Extract(domain.CaseTypePBuc01, []CaseDocument{{ID: "doc-1"}})
		assert.Empty(t, rels)
	})
}
