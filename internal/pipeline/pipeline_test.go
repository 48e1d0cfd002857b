package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
	"github.com/couchcryptid/nuclear-test-analysis/internal/observability"
	"github.com/couchcryptid/nuclear-test-analysis/internal/pipeline"
	"github.com/couchcryptid/nuclear-test-analysis/internal/report"
)

// --- mocks ---

type mockLoader struct {
	table *dataset.Table
	err   error
	calls int
}

func (m *mockLoader) Load(_ string) (*dataset.Table, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

type mockRenderer struct {
	err   error
	calls int
}

func (m *mockRenderer) Render(_ *dataset.Table, _ analysis.Result) error {
	m.calls++
	return m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTable() *dataset.Table {
	events := []domain.TestEvent{
		{Year: 1945, Country: "USA", Region: "Alamogordo", Purpose: "Wr", Type: "Tower",
			Name: "Trinity", Latitude: 33.68, Longitude: -106.48, YieldLower: 21, YieldUpper: 21},
		{Year: 1961, Country: "USSR", Region: "Nz Russ", Purpose: "Wr", Type: "Airdrop",
			Name: "Tsar Bomba", Latitude: 73.80, Longitude: 54.50, YieldLower: 50000, YieldUpper: 50000},
	}
	for i := range events {
		events[i] = domain.Enrich(events[i])
	}
	return &dataset.Table{Events: events, Missing: map[string]int{}}
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	out := &bytes.Buffer{}
	ldr := &mockLoader{table: testTable()}
	rnd := &mockRenderer{}
	metrics := observability.NewMetrics()

	p := pipeline.New(ldr, rnd, report.NewConsole(out), testLogger(), metrics)

	require.NoError(t, p.Run(context.Background(), "nuclear_explosions.csv"))

	assert.Equal(t, 1, ldr.calls)
	assert.Equal(t, 1, rnd.calls)

	banners := []string{
		"NUCLEAR EXPLOSIONS DATA ANALYSIS",
		"COUNTRY-WISE ANALYSIS",
		"TEMPORAL ANALYSIS",
		"PURPOSE AND TYPE ANALYSIS",
		"YIELD ANALYSIS",
		"KEY INSIGHTS & FINDINGS",
		"GENERATING VISUALIZATIONS",
		"ANALYSIS COMPLETE!",
	}
	output := out.String()
	last := -1
	for _, banner := range banners {
		idx := strings.Index(output, banner)
		require.NotEqual(t, -1, idx, "missing banner %q", banner)
		assert.Greater(t, idx, last, "banner %q out of order", banner)
		last = idx
	}

	assert.Contains(t, output, "Generated files:")
	assert.Contains(t, output, "  - temporal_analysis.png")
	assert.Contains(t, output, "Thank you for using Nuclear Explosions Analysis Tool!")
}

func TestPipeline_Run_LoadFailure(t *testing.T) {
	loadErr := &dataset.DataLoadError{Path: "missing.csv", Err: errors.New("no such file")}
	ldr := &mockLoader{err: loadErr}
	rnd := &mockRenderer{}

	p := pipeline.New(ldr, rnd, report.NewConsole(io.Discard), testLogger(), observability.NewMetrics())

	err := p.Run(context.Background(), "missing.csv")
	require.Error(t, err)

	var dataErr *dataset.DataLoadError
	assert.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 0, rnd.calls, "renderer must not run after load failure")
}

func TestPipeline_Run_RenderFailure(t *testing.T) {
	ldr := &mockLoader{table: testTable()}
	rnd := &mockRenderer{err: errors.New("disk full")}

	p := pipeline.New(ldr, rnd, report.NewConsole(io.Discard), testLogger(), observability.NewMetrics())

	err := p.Run(context.Background(), "nuclear_explosions.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render figures")
}

// advancingLoader moves a fake clock forward while loading, so the recorded
// stage duration is exact.
type advancingLoader struct {
	table *dataset.Table
	clock *clockwork.FakeClock
	step  time.Duration
}

func (l *advancingLoader) Load(_ string) (*dataset.Table, error) {
	l.clock.Advance(l.step)
	return l.table, nil
}

func TestPipeline_Run_StageDurationUsesClock(t *testing.T) {
	fc := clockwork.NewFakeClock()
	domain.SetClock(fc)
	defer domain.SetClock(nil)

	metrics := observability.NewMetrics()
	ldr := &advancingLoader{table: testTable(), clock: fc, step: 3 * time.Second}

	p := pipeline.New(ldr, &mockRenderer{}, report.NewConsole(io.Discard), testLogger(), metrics)
	require.NoError(t, p.Run(context.Background(), "nuclear_explosions.csv"))

	buf := &bytes.Buffer{}
	metrics.LogSummary(slog.New(slog.NewTextHandler(buf, nil)))

	var loadLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "stage=load") {
			loadLine = line
			break
		}
	}
	require.NotEmpty(t, loadLine, "load stage duration must be recorded")
	assert.Contains(t, loadLine, "sum_seconds=3")
	assert.Contains(t, loadLine, "count=1")
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ldr := &mockLoader{table: testTable()}
	rnd := &mockRenderer{}

	p := pipeline.New(ldr, rnd, report.NewConsole(io.Discard), testLogger(), observability.NewMetrics())

	err := p.Run(ctx, "nuclear_explosions.csv")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, rnd.calls)
}
