package models

import (
	"time"

	"workshop/pkg/domain"
)

// Registration is an accepted workshop registration. Every field has passed
// its value object's checks, so a Registration is never partially valid.
type Registration struct {
	ID        domain.RegistrationID
	FirstName domain.FirstName
	BirthDate domain.BirthDate
	Mobile    domain.MobileNumber
	Address   domain.Address
	CreatedAt time.Time
}

// AgeAt returns the registrant's completed years on the day of now.
func (r *Registration) AgeAt(now time.Time) int {
	return r.BirthDate.Age(now)
}
