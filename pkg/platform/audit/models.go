package audit

import (
	"time"

	id "workshop/pkg/domain"
)

// Event is emitted from domain logic to capture registration decisions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp      time.Time
	RegistrationID id.RegistrationID
	Action         string
	Decision       string
	Reason         string
	// Param names the first rejected field, empty on acceptance.
	Param     string
	RequestID string
}

type AuditEvent string

const (
	EventRegistrationAccepted AuditEvent = "registration_accepted"
	EventRegistrationRejected AuditEvent = "registration_rejected"
)

const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)
