package domain

import (
	"fmt"
	"time"
)

// NationalID is an 11-digit Norwegian national identity number.
// This is a domain primitive that enforces validity at parse time: both
// mod-11 control digits must check out.
type NationalID string

var (
	controlWeights1 = [9]int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	controlWeights2 = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// ParseNationalID validates and returns a NationalID.
// Returns an error if the value is not 11 digits or fails the checksum.
func ParseNationalID(s string) (NationalID, error) {
	if len(s) != 11 {
		return "", fmt.Errorf("national id must be 11 digits, got %d", len(s))
	}
	var digits [11]int
	for i, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("national id contains non-digit at position %d", i)
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	for i, w := range controlWeights1 {
		sum += digits[i] * w
	}
	if k1 := (11 - sum%11) % 11; k1 == 10 || k1 != digits[9] {
		return "", fmt.Errorf("national id failed first control digit")
	}

	sum = 0
	for i, w := range controlWeights2 {
		sum += digits[i] * w
	}
	if k2 := (11 - sum%11) % 11; k2 == 10 || k2 != digits[10] {
		return "", fmt.Errorf("national id failed second control digit")
	}

	return NationalID(s), nil
}

// String returns the raw 11-digit value.
func (id NationalID) String() string {
	return string(id)
}

// IsNil returns true when no identity is set.
func (id NationalID) IsNil() bool {
	return id == ""
}

// BirthDate derives the holder's birth date from the number. D-numbers
// (first digit shifted by 4) are handled. The century is chosen from the
// individual-number series per the population register rules.
func (id NationalID) BirthDate() (time.Time, error) {
	if len(id) != 11 {
		return time.Time{}, fmt.Errorf("national id not set")
	}
	day := int(id[0]-'0')*10 + int(id[1]-'0')
	if day > 40 {
		day -= 40 // D-number
	}
	month := int(id[2]-'0')*10 + int(id[3]-'0')
	year := int(id[4]-'0')*10 + int(id[5]-'0')
	individual := int(id[6]-'0')*100 + int(id[7]-'0')*10 + int(id[8]-'0')

	var century int
	switch {
	case individual < 500:
		century = 1900
	case individual < 750 && year >= 54:
		century = 1800
	case year < 40:
		century = 2000
	case individual >= 900:
		century = 1900
	default:
		return time.Time{}, fmt.Errorf("national id has no valid birth century")
	}

	birth := time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Day() != day || int(birth.Month()) != month {
		return time.Time{}, fmt.Errorf("national id encodes invalid date")
	}
	return birth, nil
}
