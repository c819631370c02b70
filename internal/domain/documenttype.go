package domain

// DocumentType identifies a structured document (SED) within a case.
// The value is the wire-level type code.
type DocumentType string

// Pension sector document types.
const (
	DocTypeP2000  DocumentType = "P2000"
	DocTypeP2100  DocumentType = "P2100"
	DocTypeP2200  DocumentType = "P2200"
	DocTypeP3000  DocumentType = "P3000"
	DocTypeP4000  DocumentType = "P4000"
	DocTypeP5000  DocumentType = "P5000"
	DocTypeP6000  DocumentType = "P6000"
	DocTypeP7000  DocumentType = "P7000"
	DocTypeP8000  DocumentType = "P8000"
	DocTypeP9000  DocumentType = "P9000"
	DocTypeP10000 DocumentType = "P10000"
	DocTypeP11000 DocumentType = "P11000"
	DocTypeP12000 DocumentType = "P12000"
	DocTypeP13000 DocumentType = "P13000"
	DocTypeP14000 DocumentType = "P14000"
	DocTypeP15000 DocumentType = "P15000"
)

// Country-specific P3000 variants. They share the P3000 structure but are
// typed separately on the wire.
const (
	DocTypeP3000AT DocumentType = "P3000_AT"
	DocTypeP3000BE DocumentType = "P3000_BE"
	DocTypeP3000BG DocumentType = "P3000_BG"
	DocTypeP3000CH DocumentType = "P3000_CH"
	DocTypeP3000CY DocumentType = "P3000_CY"
	DocTypeP3000CZ DocumentType = "P3000_CZ"
	DocTypeP3000DE DocumentType = "P3000_DE"
	DocTypeP3000DK DocumentType = "P3000_DK"
	DocTypeP3000EE DocumentType = "P3000_EE"
	DocTypeP3000ES DocumentType = "P3000_ES"
	DocTypeP3000FI DocumentType = "P3000_FI"
	DocTypeP3000FR DocumentType = "P3000_FR"
	DocTypeP3000GB DocumentType = "P3000_GB"
	DocTypeP3000GR DocumentType = "P3000_GR"
	DocTypeP3000HR DocumentType = "P3000_HR"
	DocTypeP3000HU DocumentType = "P3000_HU"
	DocTypeP3000IE DocumentType = "P3000_IE"
	DocTypeP3000IS DocumentType = "P3000_IS"
	DocTypeP3000IT DocumentType = "P3000_IT"
	DocTypeP3000LI DocumentType = "P3000_LI"
	DocTypeP3000LT DocumentType = "P3000_LT"
	DocTypeP3000LU DocumentType = "P3000_LU"
	DocTypeP3000LV DocumentType = "P3000_LV"
	DocTypeP3000MT DocumentType = "P3000_MT"
	DocTypeP3000NL DocumentType = "P3000_NL"
	DocTypeP3000NO DocumentType = "P3000_NO"
	DocTypeP3000PL DocumentType = "P3000_PL"
	DocTypeP3000PT DocumentType = "P3000_PT"
	DocTypeP3000RO DocumentType = "P3000_RO"
	DocTypeP3000SE DocumentType = "P3000_SE"
	DocTypeP3000SI DocumentType = "P3000_SI"
	DocTypeP3000SK DocumentType = "P3000_SK"
)

// Horizontal sector document types.
const (
	DocTypeH001 DocumentType = "H001"
	DocTypeH002 DocumentType = "H002"
	DocTypeH020 DocumentType = "H020"
	DocTypeH021 DocumentType = "H021"
	DocTypeH070 DocumentType = "H070"
	DocTypeH120 DocumentType = "H120"
	DocTypeH121 DocumentType = "H121"
)

// Recovery sector document types.
const (
	DocTypeR004 DocumentType = "R004"
	DocTypeR005 DocumentType = "R005"
	DocTypeR006 DocumentType = "R006"
)

// Administrative sector document types. None of these ever carry identity
// or birth data, so extraction skips them outright.
const (
	DocTypeX001 DocumentType = "X001"
	DocTypeX002 DocumentType = "X002"
	DocTypeX003 DocumentType = "X003"
	DocTypeX004 DocumentType = "X004"
	DocTypeX005 DocumentType = "X005"
	DocTypeX006 DocumentType = "X006"
	DocTypeX007 DocumentType = "X007"
	DocTypeX008 DocumentType = "X008"
	DocTypeX009 DocumentType = "X009"
	DocTypeX010 DocumentType = "X010"
	DocTypeX011 DocumentType = "X011"
	DocTypeX012 DocumentType = "X012"
	DocTypeX013 DocumentType = "X013"
	DocTypeX050 DocumentType = "X050"
	DocTypeX100 DocumentType = "X100"
)

// identityBearing lists the document types whose structures may contain a
// national id or a birth date. Loaded once, never mutated; treat as
// configuration data.
var identityBearing = map[DocumentType]struct{}{
	DocTypeP2000:  {},
	DocTypeP2100:  {},
	DocTypeP2200:  {},
	DocTypeP4000:  {},
	DocTypeP5000:  {},
	DocTypeP6000:  {},
	DocTypeP7000:  {},
	DocTypeP8000:  {},
	DocTypeP9000:  {},
	DocTypeP10000: {},
	DocTypeP12000: {},
	DocTypeP14000: {},
	DocTypeP15000: {},
	DocTypeH020:   {},
	DocTypeH021:   {},
	DocTypeH070:   {},
	DocTypeH120:   {},
	DocTypeH121:   {},
	DocTypeR004:   {},
	DocTypeR005:   {},
}

// MayCarryIdentity reports whether documents of this type can contain
// identity or birth data. Types not in the list never do, and the
// extraction dispatcher skips them.
func (t DocumentType) MayCarryIdentity() bool {
	_, ok := identityBearing[t]
	return ok
}

// String returns the wire-level type code.
func (t DocumentType) String() string {
	return string(t)
}
