package audit

import (
	"context"
	"log/slog"
)

// LogPublisher writes audit events as structured log records.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher backed by logger; nil falls back to slog.Default().
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Emit never fails; it exists to satisfy the publisher contract services depend on.
func (p *LogPublisher) Emit(ctx context.Context, event Event) error {
	args := []any{
		"log_type", "audit",
		"action", event.Action,
		"decision", event.Decision,
		"timestamp", event.Timestamp,
	}
	if !event.RegistrationID.IsNil() {
		args = append(args, "registration_id", event.RegistrationID.String())
	}
	if event.Reason != "" {
		args = append(args, "reason", event.Reason)
	}
	if event.Param != "" {
		args = append(args, "param", event.Param)
	}
	if event.RequestID != "" {
		args = append(args, "request_id", event.RequestID)
	}
	p.logger.InfoContext(ctx, event.Action, args...)
	return nil
}
