package domain

// CaseType identifies the cross-border case family (BUC) a document
// sequence belongs to. Routing policy is selected per case type.
type CaseType string

const (
	CaseTypePBuc01 CaseType = "P_BUC_01" // old-age pension claim
	CaseTypePBuc02 CaseType = "P_BUC_02" // survivor pension claim
	CaseTypePBuc03 CaseType = "P_BUC_03" // disability pension claim
	CaseTypePBuc04 CaseType = "P_BUC_04" // care periods
	CaseTypePBuc05 CaseType = "P_BUC_05"
	CaseTypePBuc06 CaseType = "P_BUC_06"
	CaseTypePBuc07 CaseType = "P_BUC_07"
	CaseTypePBuc08 CaseType = "P_BUC_08"
	CaseTypePBuc09 CaseType = "P_BUC_09"
	CaseTypePBuc10 CaseType = "P_BUC_10" // transitional, split on benefit type
	CaseTypeRBuc02 CaseType = "R_BUC_02" // recovery / repayment
)

// ParseCaseType returns the typed case family and whether it is known.
// Unknown values are valid input; routing falls back to the default policy.
func ParseCaseType(s string) (CaseType, bool) {
	switch t := CaseType(s); t {
	case CaseTypePBuc01, CaseTypePBuc02, CaseTypePBuc03, CaseTypePBuc04,
		CaseTypePBuc05, CaseTypePBuc06, CaseTypePBuc07, CaseTypePBuc08,
		CaseTypePBuc09, CaseTypePBuc10, CaseTypeRBuc02:
		return t, true
	default:
		return CaseType(s), false
	}
}

func (t CaseType) String() string {
	return string(t)
}
