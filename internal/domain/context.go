package domain

import (
	"errors"
	"time"
)

// Confidentiality is the address-protection marking on a person.
type Confidentiality string

const (
	ConfidentialityNone       Confidentiality = ""
	ConfidentialityRestricted Confidentiality = "FORTROLIG"
	ConfidentialityStrict     Confidentiality = "STRENGT_FORTROLIG"
)

// Direction tells whether the triggering event left or entered the system.
type Direction string

const (
	DirectionOutgoing Direction = "SENDT"
	DirectionIncoming Direction = "MOTTATT"
)

// CountryNorway is the residency code that selects domestic routing.
const CountryNorway = "NOR"

// PersonRecord is the registry's view of an identified person. Absence of
// a record is a valid, non-error lookup result.
type PersonRecord struct {
	NationalID      NationalID
	FirstName       string
	LastName        string
	BirthDate       time.Time
	Confidentiality Confidentiality
	ResidencyCountry string
	GeographicKey   string
}

// ErrMissingBirthDate flags a CaseContext built without a birth date. That
// is a programming invariant violation, not a data condition, and is the
// only routing error that propagates to the caller.
var ErrMissingBirthDate = errors.New("case context missing birth date")

// CaseContext is the aggregated input to the routing decision engine.
// Constructed once per event; immutable.
type CaseContext struct {
	NationalID       NationalID
	BirthDate        time.Time
	Confidentiality  Confidentiality
	ResidencyCountry string
	GeographicKey    string
	BenefitType      BenefitType
	DocumentType     DocumentType
	Direction        Direction
	LegacyCase       *LegacyCase
	Person           *PersonRecord
	CaseType         CaseType
	PersonCount      int
}

// Validate enforces the construction invariant.
func (c CaseContext) Validate() error {
	if c.BirthDate.IsZero() {
		return ErrMissingBirthDate
	}
	return nil
}

// ResidesInNorway reports whether the identified person lives domestically.
func (c CaseContext) ResidesInNorway() bool {
	return c.ResidencyCountry == CountryNorway
}

// AgeAt returns the person's age in whole years at the given time.
func (c CaseContext) AgeAt(t time.Time) int {
	age := t.Year() - c.BirthDate.Year()
	if t.YearDay() < c.BirthDate.YearDay() {
		age--
	}
	return age
}

// HasReference reports whether anything ties the event to a person or an
// existing case. Without a reference the generic intake unit handles it.
func (c CaseContext) HasReference() bool {
	return !c.NationalID.IsNil() || c.LegacyCase != nil || c.Person != nil
}
