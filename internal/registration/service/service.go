package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AuditPublisher

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"workshop/internal/platform/privacy"
	"workshop/internal/registration/metrics"
	"workshop/internal/registration/models"
	"workshop/pkg/domain"
	dErrors "workshop/pkg/domain-errors"
	"workshop/pkg/platform/audit"
	"workshop/pkg/requestcontext"
)

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service turns raw registration requests into validated registrations.
type Service struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("workshop/registration")
	}
	return s
}

// Register checks every field of req against requestcontext.Now(ctx) as
// today. All field failures are returned together, joined; on any failure
// no registration is returned.
func (s *Service) Register(ctx context.Context, req *models.RegistrationRequest) (reg *models.Registration, err error) {
	ctx, span := s.tracer.Start(ctx, "registration.Register")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req = req.Normalized()
	if err := req.Validate(); err != nil {
		s.reject(ctx, err)
		return nil, err
	}
	now := requestcontext.Now(ctx)

	firstName, nameErr := domain.NewFirstName(req.FirstName)
	birthDate, birthErr := domain.ParseBirthDateAt(req.BirthDate, now)
	mobile, mobileErr := domain.NewMobileNumber(req.Mobile)
	address, addrErr := domain.NewAddress(req.Street, req.Suburb, req.Postcode, req.Country)
	if err := errors.Join(nameErr, birthErr, mobileErr, addrErr); err != nil {
		s.reject(ctx, err)
		return nil, err
	}

	reg = &models.Registration{
		ID:        domain.NewRegistrationID(),
		FirstName: firstName,
		BirthDate: birthDate,
		Mobile:    mobile,
		Address:   address,
		CreatedAt: now,
	}
	span.SetAttributes(attribute.String("registration.id", reg.ID.String()))
	s.accept(ctx, reg)
	return reg, nil
}

func (s *Service) accept(ctx context.Context, reg *models.Registration) {
	if s.metrics != nil {
		s.metrics.IncrementAccepted()
	}
	s.logger.InfoContext(ctx, "registration accepted",
		"registration_id", reg.ID.String(),
		"mobile", privacy.MaskMobile(reg.Mobile.Value()),
	)
	s.emit(ctx, audit.Event{
		Timestamp:      reg.CreatedAt,
		RegistrationID: reg.ID,
		Action:         string(audit.EventRegistrationAccepted),
		Decision:       audit.DecisionAccepted,
	})
}

func (s *Service) reject(ctx context.Context, err error) {
	params := failedParams(err)
	if s.metrics != nil {
		s.metrics.IncrementRejected(params...)
	}
	s.logger.WarnContext(ctx, "registration rejected",
		"params", params,
		"error", err,
	)
	s.emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    string(audit.EventRegistrationRejected),
		Decision:  audit.DecisionRejected,
		Reason:    firstError(err).Error(),
		Param:     params[0],
	})
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"error", err,
			"event", event.Action,
		)
	}
}

// failedParams lists the offending parameter of each joined failure.
// Failures not tied to one field are reported as "request".
func failedParams(err error) []string {
	errs := splitJoined(err)
	params := make([]string, 0, len(errs))
	for _, e := range errs {
		p := dErrors.ParamOf(e)
		if p == "" {
			p = "request"
		}
		params = append(params, p)
	}
	return params
}

func firstError(err error) error {
	return splitJoined(err)[0]
}

func splitJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs
		}
	}
	return []error{err}
}
