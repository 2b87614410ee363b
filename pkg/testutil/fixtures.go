package testutil

import (
	"time"

	"workshop/internal/registration/models"
)

// TestToday is the fixed reference day used across registration tests.
var TestToday = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

// RegistrationRequestBuilder provides a fluent interface for building test requests.
type RegistrationRequestBuilder struct {
	req models.RegistrationRequest
}

// NewRegistrationRequestBuilder creates a builder whose defaults pass every check on TestToday.
func NewRegistrationRequestBuilder() *RegistrationRequestBuilder {
	return &RegistrationRequestBuilder{
		req: models.RegistrationRequest{
			FirstName: "John",
			BirthDate: "1990-06-15",
			Mobile:    "021 123 4567",
			Street:    "123 Main Street",
			Suburb:    "Central City",
			Postcode:  "12345",
			Country:   "New Zealand",
		},
	}
}

func (b *RegistrationRequestBuilder) WithFirstName(name string) *RegistrationRequestBuilder {
	b.req.FirstName = name
	return b
}

func (b *RegistrationRequestBuilder) WithBirthDate(date string) *RegistrationRequestBuilder {
	b.req.BirthDate = date
	return b
}

func (b *RegistrationRequestBuilder) WithMobile(mobile string) *RegistrationRequestBuilder {
	b.req.Mobile = mobile
	return b
}

func (b *RegistrationRequestBuilder) WithAddress(street, suburb, postcode, country string) *RegistrationRequestBuilder {
	b.req.Street = street
	b.req.Suburb = suburb
	b.req.Postcode = postcode
	b.req.Country = country
	return b
}

// Build returns a fresh copy, so one builder can seed several requests.
func (b *RegistrationRequestBuilder) Build() *models.RegistrationRequest {
	req := b.req
	return &req
}
