// Package monitoring holds the service's Prometheus collectors and its
// OpenTelemetry tracer.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry is served on /metrics. It carries the Go runtime and process
// collectors alongside the ones below.
var Registry = prometheus.NewRegistry()

var (
	rpcRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blooddonation_rpc_requests_total",
			Help: "Total number of RPCs handled, by method and status code.",
		},
		[]string{"method", "code"},
	)

	rpcRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blooddonation_rpc_request_duration_seconds",
			Help:    "Latency of RPC handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	appointmentsScheduledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blooddonation_appointments_scheduled_total",
			Help: "Total number of appointments booked.",
		},
	)

	appointmentsCancelledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blooddonation_appointments_cancelled_total",
			Help: "Total number of appointments cancelled.",
		},
	)

	bloodRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blooddonation_blood_requests_total",
			Help: "Total number of blood requests submitted, by urgency.",
		},
		[]string{"urgency"},
	)

	eligibilityChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blooddonation_eligibility_checks_total",
			Help: "Total number of completed eligibility checks, by result.",
		},
		[]string{"result"},
	)

	rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blooddonation_rate_limited_total",
			Help: "Total number of RPCs rejected by the rate limiter.",
		},
	)
)

func init() {
	Registry.MustRegister(Collectors()...)
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Collectors returns the service's own collectors.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		rpcRequestsTotal,
		rpcRequestDuration,
		appointmentsScheduledTotal,
		appointmentsCancelledTotal,
		bloodRequestsTotal,
		eligibilityChecksTotal,
		rateLimitedTotal,
	}
}
