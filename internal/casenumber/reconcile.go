// Package casenumber reconciles case numbers referenced in documents
// against the legacy case records supplied by the upstream pension system.
package casenumber

import "sedrouting/internal/domain"

// legacyNumberLength is the fixed width of a legacy case number.
const legacyNumberLength = 8

// Candidates holds the case numbers found in a case, narrowest list first:
// callers prefer a match from the triggering document over one found
// anywhere in the case.
type Candidates struct {
	Triggering   []string
	AllDocuments []string
}

// Collect gathers every legacy-case-shaped reference from the documents.
// Values are normalized by stripping non-digits; only values passing the
// legacy number check are kept, deduplicated in encounter order. The
// triggering document contributes only its domestic references.
func Collect(all []*domain.Document, triggering *domain.Document) Candidates {
	var c Candidates
	seen := make(map[string]struct{})
	for _, doc := range all {
		for _, ref := range references(doc) {
			num := Normalize(ref.Number)
			if !Valid(num) {
				continue
			}
			if _, dup := seen[num]; dup {
				continue
			}
			seen[num] = struct{}{}
			c.AllDocuments = append(c.AllDocuments, num)
		}
	}

	seen = make(map[string]struct{})
	for _, ref := range references(triggering) {
		if ref.Country != "NO" {
			continue
		}
		num := Normalize(ref.Number)
		if !Valid(num) {
			continue
		}
		if _, dup := seen[num]; dup {
			continue
		}
		seen[num] = struct{}{}
		c.Triggering = append(c.Triggering, num)
	}
	return c
}

func references(doc *domain.Document) []domain.CaseReference {
	if doc == nil || doc.Nav == nil {
		return nil
	}
	return doc.Nav.CaseReferences
}

// Normalize strips everything but digits from a case reference.
func Normalize(ref string) string {
	out := make([]byte, 0, len(ref))
	for i := 0; i < len(ref); i++ {
		if ref[i] >= '0' && ref[i] <= '9' {
			out = append(out, ref[i])
		}
	}
	return string(out)
}

// Valid reports whether a normalized value is a legacy case number.
func Valid(num string) bool {
	if len(num) != legacyNumberLength {
		return false
	}
	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return false
		}
	}
	return true
}

// BenefitFamily maps a case family onto the benefit type its legacy cases
// carry, where one is implied.
func BenefitFamily(caseType domain.CaseType) domain.BenefitType {
	switch caseType {
	case domain.CaseTypePBuc01:
		return domain.BenefitAlder
	case domain.CaseTypePBuc02:
		return domain.BenefitGjenlev
	case domain.CaseTypePBuc03:
		return domain.BenefitUforep
	default:
		return ""
	}
}

// Match resolves the candidates against the known legacy cases. An exact
// id match always wins. Failing that, an ALDER or UFOREP case family with
// any legacy case of the same benefit type returns the first such case as
// a best-effort match — a known heuristic, not a guaranteed-correct one.
// Otherwise the result is an explicit no-match rather than a guess.
func Match(candidateIDs []string, caseType domain.CaseType, cases []domain.LegacyCase) (*domain.LegacyCase, bool) {
	for _, id := range candidateIDs {
		for i := range cases {
			if cases[i].ID == id {
				return &cases[i], true
			}
		}
	}

	if family := BenefitFamily(caseType); family == domain.BenefitAlder || family == domain.BenefitUforep {
		for i := range cases {
			if cases[i].Type == family {
				return &cases[i], true
			}
		}
	}
	return nil, false
}
