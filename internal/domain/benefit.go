package domain

// BenefitType is the pension benefit family a case or legacy case concerns.
type BenefitType string

const (
	BenefitAlder   BenefitType = "ALDER"   // old-age pension
	BenefitUforep  BenefitType = "UFOREP"  // disability pension
	BenefitGjenlev BenefitType = "GJENLEV" // survivor pension
	BenefitBarnep  BenefitType = "BARNEP"  // children's pension
	BenefitGeneral BenefitType = "GENERELL"
)

// IsNil returns true when no benefit type is known.
func (b BenefitType) IsNil() bool {
	return b == ""
}

func (b BenefitType) String() string {
	return string(b)
}

// CaseStatus is the lifecycle state of a legacy case record.
type CaseStatus string

const (
	CaseStatusCreated    CaseStatus = "OPPRETTET"
	CaseStatusInProgress CaseStatus = "TIL_BEHANDLING"
	CaseStatusClosed     CaseStatus = "AVSLUTTET"
	CaseStatusRunning    CaseStatus = "LOPENDE"
	CaseStatusStopped    CaseStatus = "OPPHOR"
)

// LegacyCase is a pre-existing case record in the upstream pension system.
// Supplied by an external system; read-only to this service.
type LegacyCase struct {
	ID         string
	Type       BenefitType
	Status     CaseStatus
	OwningUnit OrgUnit
	SubCases   []string
}
