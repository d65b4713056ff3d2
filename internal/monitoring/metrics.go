package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Cycle metrics
	cyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dust_bot_cycles_total",
			Help: "Total number of conversion cycles by outcome",
		},
		[]string{"outcome"},
	)

	conversionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dust_bot_conversions_total",
			Help: "Total number of successful dust conversions",
		},
	)

	dustAssetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dust_bot_dust_assets_total",
			Help: "Total number of dust assets seen, by stage",
		},
		[]string{"stage"},
	)

	lastCycleTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dust_bot_last_cycle_timestamp_seconds",
			Help: "Unix timestamp of the last completed cycle",
		},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dust_bot_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(cyclesTotal)
	prometheus.MustRegister(conversionsTotal)
	prometheus.MustRegister(dustAssetsTotal)
	prometheus.MustRegister(lastCycleTimestamp)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordCycle records a completed cycle with its outcome and stamps
// the completion time.
func RecordCycle(outcome string, completedAt float64) {
	cyclesTotal.WithLabelValues(outcome).Inc()
	lastCycleTimestamp.Set(completedAt)
}

// RecordConversion records a successful conversion and the asset
// counts that went through the cycle.
func RecordConversion(fetched, converted int) {
	conversionsTotal.Inc()
	dustAssetsTotal.WithLabelValues("fetched").Add(float64(fetched))
	dustAssetsTotal.WithLabelValues("converted").Add(float64(converted))
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
