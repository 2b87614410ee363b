package models

import (
	"strings"

	dErrors "workshop/pkg/domain-errors"
	"workshop/pkg/validation"
)

// RegistrationRequest is the raw form entry. The inputsize tags only bound
// raw input; field rules live in the value objects.
type RegistrationRequest struct {
	FirstName string `json:"first_name" yaml:"first_name" validate:"inputsize"`
	BirthDate string `json:"birth_date" yaml:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Mobile    string `json:"mobile" yaml:"mobile" validate:"inputsize"`
	Street    string `json:"street" yaml:"street" validate:"inputsize"`
	Suburb    string `json:"suburb" yaml:"suburb" validate:"inputsize"`
	Postcode  string `json:"postcode" yaml:"postcode" validate:"inputsize"`
	Country   string `json:"country" yaml:"country" validate:"inputsize"`
}

// Normalize trims fields whose value objects trim anyway. The first name is
// left untouched because surrounding whitespace is a rejection, not noise.
func (r *RegistrationRequest) Normalize() {
	if r == nil {
		return
	}
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Street = strings.TrimSpace(r.Street)
	r.Suburb = strings.TrimSpace(r.Suburb)
	r.Postcode = strings.TrimSpace(r.Postcode)
	r.Country = strings.TrimSpace(r.Country)
}

// Normalized returns a normalized copy of r, leaving r itself unchanged.
func (r *RegistrationRequest) Normalized() *RegistrationRequest {
	if r == nil {
		return nil
	}
	c := *r
	c.Normalize()
	return &c
}

func (r *RegistrationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}
