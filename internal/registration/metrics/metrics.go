package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for registration checks.
type Metrics struct {
	RegistrationsAccepted prometheus.Counter
	RegistrationsRejected prometheus.Counter
	FieldRejections       *prometheus.CounterVec
}

// New registers and returns registration collectors on reg.
// Pass prometheus.DefaultRegisterer for process-wide metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "workshop_registrations_accepted_total",
			Help: "Total number of registrations that passed every field check",
		}),
		RegistrationsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "workshop_registrations_rejected_total",
			Help: "Total number of registrations rejected for one or more fields",
		}),
		FieldRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "workshop_registration_field_rejections_total",
			Help: "Total number of field failures by offending parameter",
		}, []string{"param"}),
	}
}

func (m *Metrics) IncrementAccepted() {
	m.RegistrationsAccepted.Inc()
}

// IncrementRejected counts one rejected registration and each failing field.
func (m *Metrics) IncrementRejected(params ...string) {
	m.RegistrationsRejected.Inc()
	for _, p := range params {
		m.FieldRejections.WithLabelValues(p).Inc()
	}
}
