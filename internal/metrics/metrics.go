// Package metrics exposes the Prometheus instruments of the RTK service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rtk"

// Calculation kinds.
const (
	KindPrediction = "prediction"
	KindRollup     = "rollup"
	KindGrowth     = "growth"
	KindSurvival   = "survival"
	KindExport     = "export"
)

var (
	// httpRequests counts requests by method, route template and status code.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests",
	}, []string{"method", "route", "status"})

	// httpDuration measures request latency by method and route template.
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// calculations counts engine runs by kind and outcome (success, error).
	calculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "calculations_total",
		Help:      "Total reliability calculations by kind and outcome",
	}, []string{"kind", "outcome"})

	// calculationDuration measures engine runs by kind.
	calculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "calculation_duration_seconds",
		Help:      "Reliability calculation latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"kind"})

	// overstressedParts counts parts flagged by derating analysis.
	overstressedParts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "overstressed_parts_total",
		Help:      "Total parts found overstressed during calculation",
	})
)

// RecordRequest records one served HTTP request.
func RecordRequest(method, route string, status int, durationSec float64) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(durationSec)
}

// RecordCalculation records one engine run of the given kind.
func RecordCalculation(kind string, durationSec float64, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	calculations.WithLabelValues(kind, outcome).Inc()
	calculationDuration.WithLabelValues(kind).Observe(durationSec)
}

// RecordOverstressed adds n overstressed parts.
func RecordOverstressed(n int) {
	if n > 0 {
		overstressedParts.Add(float64(n))
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
