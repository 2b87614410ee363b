// Package domain provides the validated value objects of workshop registration.
// Every type here is built through a checked constructor, so any value held
// in memory already satisfies its rules.
package domain

import (
	"github.com/google/uuid"

	dErrors "workshop/pkg/domain-errors"
)

// RegistrationID identifies an accepted registration.
type RegistrationID uuid.UUID

// NewRegistrationID returns a fresh random identifier.
func NewRegistrationID() RegistrationID {
	return RegistrationID(uuid.New())
}

// ParseRegistrationID is used at trust boundaries (CLI input, stored references).
func ParseRegistrationID(s string) (RegistrationID, error) {
	if s == "" {
		return RegistrationID(uuid.Nil), dErrors.NewNullArgument("registration_id")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return RegistrationID(uuid.Nil), dErrors.NewInvalidArgument("registration_id", "invalid registration_id format")
	}
	if id == uuid.Nil {
		return RegistrationID(uuid.Nil), dErrors.NewInvalidArgument("registration_id", "registration_id cannot be the nil UUID")
	}
	return RegistrationID(id), nil
}

func (id RegistrationID) String() string { return uuid.UUID(id).String() }
func (id RegistrationID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
