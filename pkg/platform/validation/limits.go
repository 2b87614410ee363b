package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	dErrors "workshop/pkg/domain-errors"
)

// Address field length limits, in characters.
const (
	// MaxStreetLength is the maximum length of a street line.
	MaxStreetLength = 200

	// MaxSuburbLength is the maximum length of a suburb.
	MaxSuburbLength = 100

	// MaxPostcodeLength is the maximum length of a postcode.
	MaxPostcodeLength = 20

	// MaxCountryLength is the maximum length of a country name.
	MaxCountryLength = 100
)

// MaxInputLength bounds any raw form field before field rules apply.
const MaxInputLength = 1024

// Person field limits
const (
	// MaxFirstNameLength is the maximum length of a first name, in characters.
	MaxFirstNameLength = 30

	// MaxAgeYears is the oldest accepted age in completed years.
	MaxAgeYears = 105
)

// CheckStringLength validates that a string does not exceed the maximum number of characters.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.NewInvalidArgument(fieldName, fmt.Sprintf("%s cannot exceed %d characters", fieldName, max))
	}
	return nil
}

// CheckNotBlank validates that a string holds something other than whitespace.
func CheckNotBlank(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return dErrors.NewInvalidArgument(fieldName, fmt.Sprintf("%s cannot be empty or whitespace", fieldName))
	}
	return nil
}
