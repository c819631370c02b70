package domain

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Document is one decoded structured message (SED) within a case. The JSON
// tags follow the cross-border wire format; this service never writes
// documents, only reads them.
type Document struct {
	Type     DocumentType      `json:"sed"`
	Version  string            `json:"sedGVer,omitempty"`
	Nav      *DocumentNav      `json:"nav,omitempty"`
	Pension  *DocumentPension  `json:"pensjon,omitempty"`
	Recovery *DocumentRecovery `json:"tilbakekreving,omitempty"`
}

// DocumentNav is the common header block carrying the applicant, any other
// named person, the claim and the case references.
type DocumentNav struct {
	Applicant      *Party          `json:"bruker,omitempty"`
	OtherPerson    *Person         `json:"annenperson,omitempty"`
	Claim          *Claim          `json:"krav,omitempty"`
	CaseReferences []CaseReference `json:"eessisak,omitempty"`
}

// DocumentPension holds the pension-specific block; only the survivor
// sub-structure matters to extraction.
type DocumentPension struct {
	Survivor *Party `json:"gjenlevende,omitempty"`
}

// DocumentRecovery is the repayment block of recovery documents, listing
// every person the repayment touches.
type DocumentRecovery struct {
	Parties []RecoveryParty `json:"brukere,omitempty"`
}

// RecoveryParty is one person entry in a recovery document together with
// the repayment status code that decides their role.
type RecoveryParty struct {
	Person *Person `json:"person,omitempty"`
	Status string  `json:"status,omitempty"`
}

// Party wraps a person sub-structure.
type Party struct {
	Person *Person `json:"person,omitempty"`
}

// Person is the raw person sub-structure shared by all document families.
type Person struct {
	FirstName          string `json:"fornavn,omitempty"`
	LastName           string `json:"etternavn,omitempty"`
	BirthDateRaw       string `json:"foedselsdato,omitempty"`
	PINs               []PIN  `json:"pin,omitempty"`
	Role               string `json:"rolle,omitempty"`
	RelationToDeceased string `json:"relasjontilavdod,omitempty"`
}

// PIN is one national identifier entry, qualified by issuing country.
type PIN struct {
	Country    string `json:"land,omitempty"`
	Identifier string `json:"identifikator,omitempty"`
}

// Claim carries the claim type code on claim-bearing documents.
type Claim struct {
	Type string `json:"krav,omitempty"`
}

// CaseReference points at a case record in a national system.
type CaseReference struct {
	Country string `json:"land,omitempty"`
	Number  string `json:"saksnummer,omitempty"`
}

// DecodeDocument parses a raw document payload.
func DecodeDocument(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// DomesticID returns the validated Norwegian national id from the person's
// identifier list, or the zero value when none is present or valid.
func (p *Person) DomesticID() NationalID {
	if p == nil {
		return ""
	}
	for _, pin := range p.PINs {
		if pin.Country != "NO" {
			continue
		}
		if id, err := ParseNationalID(pin.Identifier); err == nil {
			return id
		}
	}
	return ""
}

// Birth parses the person's stated birth date, if any.
func (p *Person) Birth() time.Time {
	if p == nil || p.BirthDateRaw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", p.BirthDateRaw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Criteria builds registry search criteria from the person's name and
// birth date.
func (p *Person) Criteria() SearchCriteria {
	if p == nil {
		return SearchCriteria{}
	}
	return SearchCriteria{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.Birth(),
	}
}
