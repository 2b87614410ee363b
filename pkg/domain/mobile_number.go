package domain

import (
	"regexp"
	"strings"

	dErrors "workshop/pkg/domain-errors"
	s "workshop/pkg/string"
)

// nzMobilePattern matches a New Zealand mobile number once punctuation is stripped.
var nzMobilePattern = regexp.MustCompile(`^02\d{8}$`)

// MobileNumber is a New Zealand mobile number stored as its 10 digits.
type MobileNumber struct {
	value string
}

// NewMobileNumber strips every non-digit from raw and requires 02 followed by 8 digits.
//
//	m, _ := NewMobileNumber("021-123 4567")
//	m.Value()  // "0211234567"
//	m.String() // "021 123 4567"
func NewMobileNumber(raw string) (MobileNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return MobileNumber{}, dErrors.NewInvalidArgument("mobile", "mobile cannot be empty or whitespace")
	}
	digits := s.DigitsOnly(trimmed)
	if !nzMobilePattern.MatchString(digits) {
		return MobileNumber{}, dErrors.NewInvalidArgument("mobile",
			"mobile must be a valid NZ mobile number (10 digits starting with 02)")
	}
	return MobileNumber{value: digits}, nil
}

// Value returns the normalized digits.
func (m MobileNumber) Value() string { return m.value }

func (m MobileNumber) IsZero() bool { return m.value == "" }

// String groups the digits as 02X XXX XXXX.
func (m MobileNumber) String() string {
	if len(m.value) != 10 {
		return m.value
	}
	return m.value[:3] + " " + m.value[3:6] + " " + m.value[6:]
}
