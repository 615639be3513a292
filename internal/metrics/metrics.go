// Package metrics holds Prometheus instruments that are used across the
// platform.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "API requests by method and status class.",
		},
		[]string{"method", "status"})

	StoreUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_up",
			Help: "1 when the last health probe reached the database, else 0.",
		})

	StoreErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Cumulative number of persistence-layer errors surfaced to clients.",
		})

	InquiriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Fire-and-forget inquiry submissions by kind.",
		},
		[]string{"kind"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		StoreUp,
		StoreErrorsTotal,
		InquiriesTotal,
	)
}
