package relation

import (
	"sort"

	"sedrouting/internal/domain"
)

// alwaysTrust lists the document types whose only reliable signal is the
// applicant itself. Their records are kept even without a national id, as
// long as the search criteria are complete.
var alwaysTrust = map[domain.DocumentType]struct{}{
	domain.DocTypeH070: {},
	domain.DocTypeH120: {},
	domain.DocTypeH121: {},
}

// Aggregate merges the candidate relations from all documents of a case
// into the ordered list handed to identity resolution. The first element
// is the preferred one.
//
// Records survive filtering when they carry a usable national id or come
// from an always-trusted document type, and are structurally usable either
// way. Survivors sort before all other kinds. An empty filtered result
// falls back to the unfiltered input deduplicated by national id; this
// mirrors long-standing behavior and can surface records that failed
// validation.
func Aggregate(relations []domain.PersonRelation) []domain.PersonRelation {
	filtered := make([]domain.PersonRelation, 0, len(relations))
	for _, r := range relations {
		if !r.Usable() {
			continue
		}
		if _, trusted := alwaysTrust[r.SourceDocumentType]; !r.Identified() && !trusted {
			continue
		}
		filtered = append(filtered, r)
	}

	if len(filtered) == 0 {
		filtered = append(filtered, relations...)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Kind.SortsBefore(filtered[j].Kind)
	})

	return dedupeByID(filtered)
}

// dedupeByID drops later records repeating an earlier record's national
// id. Records without an id are all kept.
func dedupeByID(relations []domain.PersonRelation) []domain.PersonRelation {
	seen := make(map[domain.NationalID]struct{}, len(relations))
	out := make([]domain.PersonRelation, 0, len(relations))
	for _, r := range relations {
		if r.Identified() {
			if _, dup := seen[r.NationalID]; dup {
				continue
			}
			seen[r.NationalID] = struct{}{}
		}
		out = append(out, r)
	}
	return out
}
