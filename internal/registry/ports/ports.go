// Package ports declares the collaborator interfaces the core consumes.
// Adapters (HTTP clients, mocks) implement them; the core never depends on
// transport details.
package ports

import (
	"context"

	"sedrouting/internal/domain"
)

// PersonRegistry looks persons up in the national registry. Absence is a
// valid, non-error result: Resolve returns (nil, nil) and Search returns
// the zero NationalID when nothing matches.
type PersonRegistry interface {
	Resolve(ctx context.Context, id domain.NationalID) (*domain.PersonRecord, error)
	Search(ctx context.Context, criteria domain.SearchCriteria) (domain.NationalID, error)
}

// LegacyCaseLookup returns the pre-existing case records for a person.
type LegacyCaseLookup interface {
	CasesForPerson(ctx context.Context, id domain.NationalID) ([]domain.LegacyCase, error)
}

// OrgUnitOverride is the geography-based organizational assignment lookup
// consulted by the P_BUC_01 routing policy. ok=false means no override.
type OrgUnitOverride interface {
	Lookup(ctx context.Context, residencyCountry, geographicKey string, confidentiality domain.Confidentiality) (unit domain.OrgUnit, ok bool, err error)
}
