package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Services
// accept a nil *Metrics so unit tests can skip instrumentation.
type Metrics struct {
	RegistrationsCreated prometheus.Counter
	DuplicatesRejected   prometheus.Counter
	WebhookDeliveries    prometheus.Counter
	WebhookFailures      prometheus.Counter
	ScheduleWrites       *prometheus.CounterVec
}

// New creates all metrics on the given registerer. main passes the real
// registry; tests pass prometheus.NewRegistry() to avoid collisions.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "adev_registrations_created_total",
			Help: "Total number of accepted visitor registrations.",
		}),
		DuplicatesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "adev_registrations_duplicate_total",
			Help: "Total number of registrations rejected as duplicates.",
		}),
		WebhookDeliveries: factory.NewCounter(prometheus.CounterOpts{
			Name: "adev_webhook_deliveries_total",
			Help: "Total number of webhook payloads delivered successfully.",
		}),
		WebhookFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "adev_webhook_failures_total",
			Help: "Total number of webhook deliveries that failed or were dropped.",
		}),
		ScheduleWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adev_schedule_writes_total",
			Help: "Total number of admin schedule mutations by entity and action.",
		}, []string{"entity", "action"}),
	}
}

// RecordScheduleWrite counts one admin mutation, e.g. ("culto", "create").
func (m *Metrics) RecordScheduleWrite(entity, action string) {
	if m == nil {
		return
	}
	m.ScheduleWrites.WithLabelValues(entity, action).Inc()
}
