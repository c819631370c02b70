package relation

import (
	"fmt"

	"sedrouting/internal/domain"
)

// ExtractFunc is one extraction strategy: it reads a single document of
// the family it knows and returns zero or more candidate relations. A
// returned error means the nested data was malformed; the dispatcher logs
// it and drops that document's contribution without aborting the case.
type ExtractFunc func(doc *domain.Document, caseType domain.CaseType, docID string) ([]domain.PersonRelation, error)

// strategies maps document types to their dedicated extraction strategy.
// Types absent from the table use extractGeneric. An enum-keyed table
// keeps one-strategy-per-type clarity without an inheritance hierarchy.
var strategies = map[domain.DocumentType]ExtractFunc{
	domain.DocTypeP2000:  extractApplicant,
	domain.DocTypeP2200:  extractApplicant,
	domain.DocTypeP4000:  extractApplicant,
	domain.DocTypeP12000: extractApplicant,
	domain.DocTypeP14000: extractApplicant,
	domain.DocTypeH070:   extractApplicant,
	domain.DocTypeH120:   extractApplicant,
	domain.DocTypeH121:   extractApplicant,
	domain.DocTypeP2100:  extractSurvivor,
	domain.DocTypeP5000:  extractSurvivor,
	domain.DocTypeP6000:  extractSurvivor,
	domain.DocTypeP7000:  extractSurvivor,
	domain.DocTypeP10000: extractSurvivor,
	domain.DocTypeP15000: extractClaimConditioned,
	domain.DocTypeR004:   extractApplicant,
	domain.DocTypeR005:   extractRecovery,
}

// strategyFor returns the extraction strategy for a document type.
func strategyFor(t domain.DocumentType) ExtractFunc {
	if f, ok := strategies[t]; ok {
		return f
	}
	return extractGeneric
}

// benefitHintByCaseType derives the applicant's benefit hint from the case
// family on simple-applicant documents.
var benefitHintByCaseType = map[domain.CaseType]domain.BenefitType{
	domain.CaseTypePBuc01: domain.BenefitAlder,
	domain.CaseTypePBuc02: domain.BenefitGjenlev,
	domain.CaseTypePBuc03: domain.BenefitUforep,
}

// claimTypeSurvivor is the claim code selecting the survivor path on
// claim-conditioned documents.
const claimTypeSurvivor = "02"

// Repayment status codes on recovery documents.
const (
	recoveryStatusDeceased  = "avdod"
	recoveryStatusSurvivor  = "etterlatte"
	recoveryStatusApplicant = "forsikret"
)

func applicantRelation(doc *domain.Document, caseType domain.CaseType, docID string) (domain.PersonRelation, bool) {
	if doc.Nav == nil || doc.Nav.Applicant == nil || doc.Nav.Applicant.Person == nil {
		return domain.PersonRelation{}, false
	}
	person := doc.Nav.Applicant.Person
	return domain.PersonRelation{
		NationalID:         person.DomesticID(),
		Kind:               domain.RelationApplicant,
		BenefitHint:        benefitHintByCaseType[caseType],
		SourceDocumentType: doc.Type,
		SourceDocumentID:   docID,
		Search:             person.Criteria(),
		BirthDate:          person.Birth(),
	}, true
}

// extractApplicant handles simple-applicant documents: the single
// applicant, with the benefit hint derived from the case family.
func extractApplicant(doc *domain.Document, caseType domain.CaseType, docID string) ([]domain.PersonRelation, error) {
	rel, ok := applicantRelation(doc, caseType, docID)
	if !ok {
		return nil, nil
	}
	return []domain.PersonRelation{rel}, nil
}

// extractSurvivor handles survivor-bearing documents: classify the
// survivor sub-structure when present, otherwise fall back to the
// applicant result.
func extractSurvivor(doc *domain.Document, caseType domain.CaseType, docID string) ([]domain.PersonRelation, error) {
	if doc.Pension == nil || doc.Pension.Survivor == nil || doc.Pension.Survivor.Person == nil {
		return extractApplicant(doc, caseType, docID)
	}
	person := doc.Pension.Survivor.Person
	kind, hint := Classify(person.RelationToDeceased)
	return []domain.PersonRelation{{
		NationalID:         person.DomesticID(),
		Kind:               kind,
		BenefitHint:        hint,
		SourceDocumentType: doc.Type,
		SourceDocumentID:   docID,
		Search:             person.Criteria(),
		BirthDate:          person.Birth(),
	}}, nil
}

// extractClaimConditioned handles documents where a claim type code
// decides the path: claim "02" runs the survivor extraction, every other
// value (including absent) runs the applicant extraction.
func extractClaimConditioned(doc *domain.Document, caseType domain.CaseType, docID string) ([]domain.PersonRelation, error) {
	if doc.Nav != nil && doc.Nav.Claim != nil && doc.Nav.Claim.Type == claimTypeSurvivor {
		return extractSurvivor(doc, caseType, docID)
	}
	return extractApplicant(doc, caseType, docID)
}

// extractRecovery handles multi-person recovery documents. Every person
// entry is mapped through its repayment status; entries that classify as
// OTHER are debtors or third parties, not case subjects, and are dropped
// entirely.
func extractRecovery(doc *domain.Document, _ domain.CaseType, docID string) ([]domain.PersonRelation, error) {
	if doc.Recovery == nil {
		return nil, nil
	}
	var out []domain.PersonRelation
	for i, party := range doc.Recovery.Parties {
		if party.Person == nil {
			return nil, fmt.Errorf("recovery entry %d missing person", i)
		}
		var kind domain.RelationKind
		switch party.Status {
		case recoveryStatusDeceased:
			kind = domain.RelationDeceased
		case recoveryStatusSurvivor:
			kind = domain.RelationSurvivor
		case recoveryStatusApplicant:
			kind = domain.RelationApplicant
		default:
			continue
		}
		out = append(out, domain.PersonRelation{
			NationalID:         party.Person.DomesticID(),
			Kind:               kind,
			SourceDocumentType: doc.Type,
			SourceDocumentID:   docID,
			Search:             party.Person.Criteria(),
			BirthDate:          party.Person.Birth(),
		})
	}
	return out, nil
}

// survivorRoleCode marks the "other person" entry as a survivor.
const survivorRoleCode = "01"

// extractGeneric is the fallback strategy for the document types without a
// dedicated one: an "other person" carrying the survivor role code wins,
// otherwise the applicant.
func extractGeneric(doc *domain.Document, caseType domain.CaseType, docID string) ([]domain.PersonRelation, error) {
	if doc.Nav != nil && doc.Nav.OtherPerson != nil && doc.Nav.OtherPerson.Role == survivorRoleCode {
		person := doc.Nav.OtherPerson
		return []domain.PersonRelation{{
			NationalID:         person.DomesticID(),
			Kind:               domain.RelationSurvivor,
			SourceDocumentType: doc.Type,
			SourceDocumentID:   docID,
			Search:             person.Criteria(),
			BirthDate:          person.Birth(),
		}}, nil
	}
	return extractApplicant(doc, caseType, docID)
}
