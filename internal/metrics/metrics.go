// Package metrics holds the prometheus collectors shared by the drinks service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DrinkCacheLookups counts cache reads by result ("hit" or "miss").
	DrinkCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drink_cache_lookups_total",
			Help: "Total number of drink cache lookups",
		},
		[]string{"result"},
	)

	DrinkCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drink_cache_entries",
			Help: "Current number of cached drink records",
		},
	)

	DrinkListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drink_list_size",
			Help: "Current number of drinks in the working list",
		},
	)

	// UpstreamRequests counts CocktailDB calls by endpoint and outcome
	// ("success", "empty", "error").
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cocktaildb_requests_total",
			Help: "Total number of requests sent to CocktailDB",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cocktaildb_request_duration_seconds",
			Help:    "Duration of CocktailDB requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests passing through the circuit breaker by result",
		},
		[]string{"name", "result"},
	)
)
