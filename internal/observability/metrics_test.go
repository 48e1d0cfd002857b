package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	require.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestLogSummary(t *testing.T) {
	m := NewMetrics()
	m.RowsLoaded.Add(2051)
	m.RowsSkipped.Add(3)
	m.ChartsRendered.Add(4)
	m.StageDuration.WithLabelValues("load").Observe(0.25)

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	m.LogSummary(logger)

	out := buf.String()
	assert.Contains(t, out, "nuclear_analysis_rows_loaded_total")
	assert.Contains(t, out, "value=2051")
	assert.Contains(t, out, "nuclear_analysis_rows_skipped_total")
	assert.Contains(t, out, "nuclear_analysis_charts_rendered_total")
	assert.Contains(t, out, "nuclear_analysis_stage_duration_seconds")
	assert.Contains(t, out, "stage=load")
}
