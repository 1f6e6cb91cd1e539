package metrics

import (
	"strconv"
	"time"

	"lab-reservation/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lab"

// Metrics holds the service collectors. It implements commands.Observer.
type Metrics struct {
	registry *prometheus.Registry

	admissions    *prometheus.CounterVec
	displacements prometheus.Counter
	transitions   *prometheus.CounterVec
	collaborators *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_admitted_total",
			Help:      "Bookings admitted, by applicant class.",
		}, []string{"class"}),
		displacements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_displaced_total",
			Help:      "External bookings displaced by internal applicants.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions applied.",
		}, []string{"from", "to"}),
		collaborators: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_failures_total",
			Help:      "Ledger and payment collaborator failures that did not roll back a transition.",
		}, []string{"collaborator"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		m.admissions, m.displacements, m.transitions, m.collaborators,
		m.httpRequests, m.httpDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) BookingAdmitted(class booking.ApplicantClass) {
	m.admissions.WithLabelValues(string(class)).Inc()
}

func (m *Metrics) BookingsDisplaced(n int) {
	m.displacements.Add(float64(n))
}

func (m *Metrics) TransitionApplied(from, to booking.Status) {
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) CollaboratorFailed(collaborator string) {
	m.collaborators.WithLabelValues(collaborator).Inc()
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
