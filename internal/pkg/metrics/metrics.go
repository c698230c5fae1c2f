// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

var (
	// BookingAttemptsTotal counts booking requests by outcome.
	// Labels: outcome (booked, already_booked, slot_taken, date_not_in_future,
	// non_business_day, holiday_closed, hour_out_of_range, rejected, error).
	BookingAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_attempts_total",
			Help:      "Booking attempts partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	// CancellationsTotal counts cancelled visits.
	// Labels: role (patient, admin).
	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Cancelled visits partitioned by the role of the actor.",
		},
		[]string{"role"},
	)

	// AvailabilityCacheTotal counts availability cache lookups.
	// Labels: result (hit, miss, error).
	AvailabilityCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_cache_total",
			Help:      "Availability cache lookups partitioned by result.",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration observes request latency.
	// Labels: method, route, status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
