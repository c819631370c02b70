package domain

import "time"

// RelationKind is the role a person holds relative to a pension case.
type RelationKind string

const (
	RelationApplicant RelationKind = "FORSIKRET"
	RelationSurvivor  RelationKind = "GJENLEVENDE"
	RelationDeceased  RelationKind = "AVDOD"
	RelationChild     RelationKind = "BARN"
	RelationGuardian  RelationKind = "VERGE"
	RelationOther     RelationKind = "ANNET"
)

// rank orders relation kinds for aggregation: survivors are preferred by
// downstream identity resolution and sort before everything else.
func (k RelationKind) rank() int {
	if k == RelationSurvivor {
		return 0
	}
	return 1
}

// SortsBefore reports whether k precedes other in aggregation order.
func (k RelationKind) SortsBefore(other RelationKind) bool {
	return k.rank() < other.rank()
}

// SearchCriteria carries the name and birth date used to look a person up
// in the registry when no national id is present on the document.
type SearchCriteria struct {
	FirstName string
	LastName  string
	BirthDate time.Time
}

// Complete reports whether the criteria are sufficient for a registry search.
func (c SearchCriteria) Complete() bool {
	return c.FirstName != "" && c.LastName != "" && !c.BirthDate.IsZero()
}

// PersonRelation is one candidate person extracted from one document,
// together with the role the document assigns them. Never mutated after
// creation.
type PersonRelation struct {
	NationalID         NationalID
	Kind               RelationKind
	BenefitHint        BenefitType
	SourceDocumentType DocumentType
	SourceDocumentID   string
	Search             SearchCriteria
	BirthDate          time.Time
}

// Identified reports whether the record carries a usable national id.
func (r PersonRelation) Identified() bool {
	return !r.NationalID.IsNil()
}

// Usable reports whether the record can drive identity resolution at all:
// either an id or complete search criteria. Records with neither are
// discarded by the aggregator.
func (r PersonRelation) Usable() bool {
	return r.Identified() || r.Search.Complete()
}
