package domain

import (
	"fmt"

	limits "workshop/pkg/platform/validation"
	s "workshop/pkg/string"
	"workshop/pkg/validation"
)

// Address is a four-part postal address. Fields are stored trimmed.
type Address struct {
	street   string
	suburb   string
	postcode string
	country  string
}

// NewAddress trims every field, then checks each is present and within its length limit.
func NewAddress(street, suburb, postcode, country string) (Address, error) {
	s.TrimStrings(&street, &suburb, &postcode, &country)
	fields := []struct {
		param string
		value string
		max   int
	}{
		{"street", street, limits.MaxStreetLength},
		{"suburb", suburb, limits.MaxSuburbLength},
		{"postcode", postcode, limits.MaxPostcodeLength},
		{"country", country, limits.MaxCountryLength},
	}
	for _, f := range fields {
		if err := validation.ValidateArgument(f.param, f.value, fmt.Sprintf("notblank,max=%d", f.max)); err != nil {
			return Address{}, err
		}
	}
	return Address{street: street, suburb: suburb, postcode: postcode, country: country}, nil
}

func (a Address) Street() string   { return a.street }
func (a Address) Suburb() string   { return a.suburb }
func (a Address) Postcode() string { return a.postcode }
func (a Address) Country() string  { return a.country }

// IsZero reports whether a was never constructed.
func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.street, a.suburb, a.postcode, a.country)
}
