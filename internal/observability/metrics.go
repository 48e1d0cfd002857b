package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for an analysis run.
// The process is one-shot, so metrics live on a private registry and are
// logged as a run summary instead of being scraped.
type Metrics struct {
	RowsLoaded     prometheus.Counter
	RowsSkipped    prometheus.Counter
	ChartsRendered prometheus.Counter

	StageDuration *prometheus.HistogramVec // label: stage={load,analyze,report,render}

	registry *prometheus.Registry
}

// NewMetrics creates all run metrics on a fresh registry. Each call is
// independent, so tests can construct their own without collisions.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuclear_analysis",
			Name:      "rows_loaded_total",
			Help:      "Total data rows parsed into events.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuclear_analysis",
			Name:      "rows_skipped_total",
			Help:      "Total data rows dropped as unparseable.",
		}),
		ChartsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuclear_analysis",
			Name:      "charts_rendered_total",
			Help:      "Total figure files written.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nuclear_analysis",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RowsLoaded,
		m.RowsSkipped,
		m.ChartsRendered,
		m.StageDuration,
	)

	return m
}

// LogSummary gathers the registry and logs one line per metric family with
// its total value. Called once at the end of a run.
func (m *Metrics) LogSummary(logger *slog.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Error("metrics gather failed", "error", err)
		return
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				logger.Info("run metric",
					"name", mf.GetName(),
					"value", metric.GetCounter().GetValue(),
				)
			case metric.GetHistogram() != nil:
				attrs := []any{
					"name", mf.GetName(),
					"count", metric.GetHistogram().GetSampleCount(),
					"sum_seconds", metric.GetHistogram().GetSampleSum(),
				}
				for _, lp := range metric.GetLabel() {
					attrs = append(attrs, lp.GetName(), lp.GetValue())
				}
				logger.Info("run metric", attrs...)
			}
		}
	}
}
