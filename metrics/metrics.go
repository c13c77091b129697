package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles mortgage engine instrumentation.
type Metrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	ExportsTotal        *prometheus.CounterVec
}

// New constructs and registers metrics.
func New() *Metrics {
	m := &Metrics{
		CalculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mortgage_calculations_total",
				Help: "Total schedule calculations by status",
			},
			[]string{"status"},
		),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mortgage_calculation_duration_seconds",
			Help:    "Schedule calculation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mortgage_exports_total",
				Help: "Total schedule exports by format",
			},
			[]string{"format"},
		),
	}
	prometheus.MustRegister(
		m.CalculationsTotal,
		m.CalculationDuration,
		m.ExportsTotal,
	)
	return m
}
