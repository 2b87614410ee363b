package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "workshop/pkg/domain-errors"
	"workshop/pkg/platform/validation"
)

// AddressSuite tests address construction.
//
// Justification: Every field has its own presence and length rule, and the
// stored form must be the trimmed input.
type AddressSuite struct {
	suite.Suite
}

func TestAddressSuite(t *testing.T) {
	suite.Run(t, new(AddressSuite))
}

func (s *AddressSuite) TestNewAddress_Valid() {
	s.Run("stores fields verbatim and renders them", func() {
		a, err := NewAddress("123 Main Street", "Central City", "12345", "New Zealand")
		s.Require().NoError(err)
		s.Equal("123 Main Street", a.Street())
		s.Equal("Central City", a.Suburb())
		s.Equal("12345", a.Postcode())
		s.Equal("New Zealand", a.Country())
		s.Equal("123 Main Street, Central City, 12345, New Zealand", a.String())
		s.False(a.IsZero())
	})

	s.Run("trims surrounding whitespace", func() {
		a, err := NewAddress("  1 Queen St ", "\tAuckland", "1010 ", " NZ ")
		s.Require().NoError(err)
		s.Equal("1 Queen St", a.Street())
		s.Equal("Auckland", a.Suburb())
		s.Equal("1010", a.Postcode())
		s.Equal("NZ", a.Country())
	})

	s.Run("accepts fields at their maximum length", func() {
		_, err := NewAddress(
			strings.Repeat("a", validation.MaxStreetLength),
			strings.Repeat("b", validation.MaxSuburbLength),
			strings.Repeat("1", validation.MaxPostcodeLength),
			strings.Repeat("c", validation.MaxCountryLength),
		)
		s.NoError(err)
	})

	s.Run("length is measured after trimming", func() {
		_, err := NewAddress("  "+strings.Repeat("a", validation.MaxStreetLength)+"  ", "Suburb", "1010", "NZ")
		s.NoError(err)
	})
}

func (s *AddressSuite) TestNewAddress_Invalid() {
	valid := []string{"123 Main Street", "Central City", "12345", "New Zealand"}
	params := []string{"street", "suburb", "postcode", "country"}
	limits := []int{validation.MaxStreetLength, validation.MaxSuburbLength, validation.MaxPostcodeLength, validation.MaxCountryLength}

	build := func(i int, v string) error {
		args := append([]string(nil), valid...)
		args[i] = v
		_, err := NewAddress(args[0], args[1], args[2], args[3])
		return err
	}

	for i, param := range params {
		s.Run(param+" empty or whitespace", func() {
			for _, v := range []string{"", "   ", "\t\n"} {
				err := build(i, v)
				s.Require().Error(err)
				s.True(dErrors.HasCode(err, dErrors.CodeInvalidArgument))
				s.Equal(param, dErrors.ParamOf(err))
				s.Contains(err.Error(), "empty")
			}
		})

		s.Run(param+" too long", func() {
			err := build(i, strings.Repeat("x", limits[i]+1))
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidArgument))
			s.Equal(param, dErrors.ParamOf(err))
			s.Contains(err.Error(), "cannot exceed")
		})
	}

	s.Run("reports the first failing field in order", func() {
		_, err := NewAddress(strings.Repeat("A", validation.MaxStreetLength+1), " ", "12345", "")
		s.Require().Error(err)
		s.Equal("street", dErrors.ParamOf(err))
	})

	s.Run("201 character street names the limit", func() {
		_, err := NewAddress(strings.Repeat("A", 201), "Central City", "12345", "New Zealand")
		s.Require().Error(err)
		s.Equal("street cannot exceed 200 characters", err.Error())
	})
}

func (s *AddressSuite) TestAddress_Equality() {
	a, err := NewAddress("123 Main Street", "Central City", "12345", "New Zealand")
	s.Require().NoError(err)

	s.Run("equal when all trimmed fields match", func() {
		b, err := NewAddress(" 123 Main Street ", "Central City", "12345", "New Zealand ")
		s.Require().NoError(err)
		s.True(a == b)
		set := map[Address]struct{}{a: {}}
		_, found := set[b]
		s.True(found)
	})

	s.Run("differs when any field differs", func() {
		b, err := NewAddress("123 Main Street", "Central City", "12346", "New Zealand")
		s.Require().NoError(err)
		s.False(a == b)
	})

	s.Run("rebuilding from accessors yields an equal value", func() {
		b, err := NewAddress(a.Street(), a.Suburb(), a.Postcode(), a.Country())
		s.Require().NoError(err)
		s.Equal(a, b)
	})
}
