// Package metrics собирает prometheus метрики сервиса.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "o2c"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
	OutcomeRequeue = "requeued"
	OutcomeDead    = "dead_lettered"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests      *prometheus.CounterVec
	HTTPLatency       *prometheus.HistogramVec
	CollaboratorCalls *prometheus.HistogramVec
	EventsPublished   *prometheus.CounterVec
	EventsConsumed    *prometheus.CounterVec
	OffersExpired     prometheus.Counter
	ApprovalsReceived prometheus.Counter
}

// New регистрирует метрики сервиса service в собственном реестре.
func New(service string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
		CollaboratorCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "collaborator_call_duration_seconds",
			Help:      "Latency of outbound calls to collaborator services, retries included.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"collaborator", "operation", "outcome"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "events_published_total",
			Help:      "Domain events handed to the bus.",
		}, []string{"type", "outcome"}),
		EventsConsumed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "events_consumed_total",
			Help:      "Domain events received from the bus.",
		}, []string{"type", "outcome"}),
		OffersExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "offers_expired_total",
			Help:      "Offers moved to EXPIRED by the sweeper.",
		}),
		ApprovalsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: service,
			Name:      "offer_approvals_received_total",
			Help:      "Distinct offer.approved events accepted by the order service.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests, m.HTTPLatency, m.CollaboratorCalls, m.EventsPublished, m.EventsConsumed,
		m.OffersExpired, m.ApprovalsReceived,
	)
	return m
}

// ObserveCall записывает длительность исходящего вызова.
func (m *Metrics) ObserveCall(collaborator, operation string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.CollaboratorCalls.WithLabelValues(collaborator, operation, outcome).Observe(time.Since(started).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
