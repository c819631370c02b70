package relation

import "sedrouting/internal/domain"

// Relation-to-deceased code tables. The codes are scattered across the
// document schemas; they are centralized here so the mapping stays
// auditable and testable in isolation. Loaded once, never mutated.
var (
	// childCodes cover own, adopted, foster and step children.
	childCodes = map[string]struct{}{
		"06": {}, // own child
		"07": {}, // adopted child
		"08": {}, // foster child
		"09": {}, // step child
	}

	// survivorCodes are the known adult relations to the deceased.
	survivorCodes = map[string]struct{}{
		"01": {}, // spouse
		"02": {}, // registered partner
		"03": {}, // cohabitant
		"04": {}, // former spouse
		"05": {}, // former partner
	}
)

// Classify maps a raw relation-to-deceased code onto a relation kind and a
// benefit hint. It never fails: unknown codes degrade to OTHER, and an
// empty code on an otherwise present survivor still classifies as
// SURVIVOR, just without a benefit hint.
func Classify(relationCode string) (domain.RelationKind, domain.BenefitType) {
	if relationCode == "" {
		return domain.RelationSurvivor, ""
	}
	if _, ok := childCodes[relationCode]; ok {
		return domain.RelationChild, domain.BenefitBarnep
	}
	if _, ok := survivorCodes[relationCode]; ok {
		return domain.RelationSurvivor, domain.BenefitGjenlev
	}
	return domain.RelationOther, ""
}
