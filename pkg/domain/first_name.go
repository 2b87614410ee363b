package domain

import (
	"strings"
	"unicode"

	dErrors "workshop/pkg/domain-errors"
	"workshop/pkg/platform/validation"
	s "workshop/pkg/string"
)

// FirstName is a personal name made of letters, spaces, hyphens and apostrophes.
// It holds at least one letter and never starts or ends with whitespace.
type FirstName struct {
	value string
}

// NewFirstName validates name as given; surrounding whitespace is rejected, not trimmed.
func NewFirstName(name string) (FirstName, error) {
	if name == "" {
		return FirstName{}, dErrors.NewNullArgument("first_name")
	}
	if err := validation.CheckNotBlank("first_name", name); err != nil {
		return FirstName{}, err
	}
	if s.HasSurroundingSpace(name) {
		return FirstName{}, dErrors.NewInvalidArgument("first_name", "first_name cannot start or end with whitespace")
	}
	if err := validation.CheckStringLength("first_name", name, validation.MaxFirstNameLength); err != nil {
		return FirstName{}, err
	}
	if strings.IndexFunc(name, func(r rune) bool { return !isNameRune(r) }) >= 0 {
		return FirstName{}, dErrors.NewInvalidArgument("first_name",
			"first_name can only contain letters, spaces, hyphens and apostrophes")
	}
	if !strings.ContainsFunc(name, unicode.IsLetter) {
		return FirstName{}, dErrors.NewInvalidArgument("first_name", "first_name must contain at least one letter")
	}
	return FirstName{value: name}, nil
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\''
}

func (n FirstName) Value() string  { return n.value }
func (n FirstName) String() string { return n.value }
func (n FirstName) IsZero() bool   { return n.value == "" }
