package domain

// OrgUnit is an organizational unit code, the terminal value of routing.
// The value is the stable external 4-digit unit number.
type OrgUnit string

const (
	UnitPensionAbroad         OrgUnit = "0001" // foreign pension unit
	UnitConfidential          OrgUnit = "2103" // strictly restricted persons
	UnitIntakeAndDistribution OrgUnit = "4303" // generic intake when no route exists
	UnitDisabilityAbroad      OrgUnit = "4475" // foreign disability unit
	UnitDisabilityDomestic    OrgUnit = "4476" // domestic disability with foreign ties
	UnitFinanceSettlement     OrgUnit = "4819" // recovery settlements
	UnitNFPAbroadAalesund     OrgUnit = "4862" // domestic unit for pension abroad cases
)

var orgUnitNames = map[OrgUnit]string{
	UnitPensionAbroad:         "PENSJON UTLAND",
	UnitConfidential:          "VIKAFOSSEN",
	UnitIntakeAndDistribution: "ID OG FORDELING",
	UnitDisabilityAbroad:      "UFORE UTLAND",
	UnitDisabilityDomestic:    "UFORE UTLANDSTILSNITT",
	UnitFinanceSettlement:     "OKONOMI PENSJON",
	UnitNFPAbroadAalesund:     "NFP UTLAND AALESUND",
}

// Code returns the stable external unit number.
func (u OrgUnit) Code() string {
	return string(u)
}

// String returns a readable name for logs, falling back to the code.
func (u OrgUnit) String() string {
	if name, ok := orgUnitNames[u]; ok {
		return name
	}
	return string(u)
}
