package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_codes"

// Metrics holds the Prometheus counters, histograms, and gauges for the code catalog
// and the lookup server.
type Metrics struct {
	Lookups            *prometheus.CounterVec // labels: table, method={code,key,list}, outcome={hit,miss,unknown_table}
	TablesLoaded       prometheus.Gauge
	ValidationProblems *prometheus.GaugeVec // labels: table

	RequestDuration *prometheus.HistogramVec // labels: route, status
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetricsWith(prometheus.NewRegistry())
}

// NewMetricsWith creates the metrics and registers them with reg. One-shot
// commands pass a private registry since nothing scrapes them.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Code table lookups by table, method and outcome.",
		}, []string{"table", "method", "outcome"}),
		TablesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tables_loaded",
			Help:      "Number of code tables registered in the catalog.",
		}),
		ValidationProblems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_problems",
			Help:      "Contract violations found per table when the catalog was built.",
		}, []string{"table"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Lookup API request duration in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"route", "status"}),
	}

	reg.MustRegister(
		m.Lookups,
		m.TablesLoaded,
		m.ValidationProblems,
		m.RequestDuration,
	)

	return m
}
