package routing

import (
	"time"

	"sedrouting/internal/domain"
)

// policyFunc is one case-type family's routing rule. Policies are pure:
// identical inputs always give the identical unit.
type policyFunc func(c domain.CaseContext, at time.Time) domain.OrgUnit

// policyFor selects the policy for a case type. Unknown case types get the
// default policy; a fallback unit always exists.
func policyFor(t domain.CaseType) policyFunc {
	switch t {
	case domain.CaseTypePBuc01, domain.CaseTypePBuc04:
		return decidePensionFamily
	case domain.CaseTypePBuc02:
		return decideSurvivorFamily
	case domain.CaseTypePBuc03:
		return decideDisabilityFamily
	case domain.CaseTypePBuc05, domain.CaseTypePBuc06, domain.CaseTypePBuc07,
		domain.CaseTypePBuc08, domain.CaseTypePBuc09:
		return decideAgeSplitFamily
	case domain.CaseTypePBuc10:
		return decideBenefitSplitFamily
	case domain.CaseTypeRBuc02:
		return decideRecoveryFamily
	default:
		return decideDefault
	}
}

// Age bracket that lands a case in the disability catchment instead of
// the pension catchment.
const (
	disabilityAgeMin = 18
	disabilityAgeMax = 60
)

// decidePensionFamily routes the applicant/survivor-oriented families on
// residency alone.
func decidePensionFamily(c domain.CaseContext, _ time.Time) domain.OrgUnit {
	if c.ResidesInNorway() {
		return domain.UnitNFPAbroadAalesund
	}
	return domain.UnitPensionAbroad
}

// decideSurvivorFamily is the pension-family rule with one extra guard: a
// closed disability legacy case means there is nothing to route into, so
// the event goes to intake instead of inferring a new case.
func decideSurvivorFamily(c domain.CaseContext, at time.Time) domain.OrgUnit {
	if c.LegacyCase != nil &&
		c.LegacyCase.Type == domain.BenefitUforep &&
		c.LegacyCase.Status == domain.CaseStatusClosed {
		return domain.UnitIntakeAndDistribution
	}
	return decidePensionFamily(c, at)
}

func decideDisabilityFamily(c domain.CaseContext, _ time.Time) domain.OrgUnit {
	if c.ResidesInNorway() {
		return domain.UnitDisabilityDomestic
	}
	return domain.UnitDisabilityAbroad
}

// decideAgeSplitFamily picks the disability catchment for working-age
// persons and the pension catchment otherwise, then applies the residency
// split within the catchment.
func decideAgeSplitFamily(c domain.CaseContext, at time.Time) domain.OrgUnit {
	age := c.AgeAt(at)
	if age >= disabilityAgeMin && age < disabilityAgeMax {
		return decideDisabilityFamily(c, at)
	}
	return decidePensionFamily(c, at)
}

// decideBenefitSplitFamily branches on the benefit type instead of age.
func decideBenefitSplitFamily(c domain.CaseContext, at time.Time) domain.OrgUnit {
	if c.BenefitType == domain.BenefitUforep {
		return decideDisabilityFamily(c, at)
	}
	return decidePensionFamily(c, at)
}

// decideRecoveryFamily routes repayment cases. More than one identified
// person or any outgoing traffic goes to intake; a settlement document
// goes straight to finance; the incoming rest is routed by benefit type.
func decideRecoveryFamily(c domain.CaseContext, _ time.Time) domain.OrgUnit {
	if c.PersonCount > 1 {
		return domain.UnitIntakeAndDistribution
	}
	if c.DocumentType == domain.DocTypeR004 {
		return domain.UnitFinanceSettlement
	}
	if c.Direction != domain.DirectionIncoming {
		return domain.UnitIntakeAndDistribution
	}
	if c.BenefitType == domain.BenefitUforep {
		return domain.UnitDisabilityAbroad
	}
	return domain.UnitPensionAbroad
}

// decideDefault handles unmapped case types.
func decideDefault(_ domain.CaseContext, _ time.Time) domain.OrgUnit {
	return domain.UnitIntakeAndDistribution
}
