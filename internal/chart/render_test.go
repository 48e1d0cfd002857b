package chart

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
)

func testEvent(year int, country, region, purpose, typ, name string, yield, lat, lon float64) domain.TestEvent {
	e := domain.TestEvent{
		Year:       year,
		Country:    country,
		Region:     region,
		Purpose:    purpose,
		Type:       typ,
		Name:       name,
		Latitude:   lat,
		Longitude:  lon,
		YieldLower: yield,
		YieldUpper: yield,
	}
	return domain.Enrich(e)
}

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	events := []domain.TestEvent{
		testEvent(1945, "USA", "Alamogordo", "Wr", "Tower", "Trinity", 21, 33.68, -106.48),
		testEvent(1952, "USA", "Enewetak", "Wr", "Surface", "Ivy Mike", 10400, 11.67, 162.19),
		testEvent(1949, "USSR", "Semi Kzakh", "Wr", "Tower", "RDS-1", 22, 50.43, 77.81),
		testEvent(1961, "USSR", "Nz Russ", "Wr", "Airdrop", "Tsar Bomba", 50000, 73.80, 54.50),
		testEvent(1960, "France", "Reggane Alg", "Wr", "Tower", "Gerboise Bleue", 70, 26.31, -0.05),
		testEvent(1974, "India", "Pokhran", "Pne", "Shaft", "Smiling Buddha", 12, 27.09, 71.75),
		testEvent(1962, "USA", "Nts", "We", "Shaft", "Sedan", 104, 37.17, -116.04),
		testEvent(1966, "China", "Lop Nor", "Wr", "Airdrop", "CHIC-3", 0, 40.60, 89.60),
	}
	events[len(events)-1].Latitude = math.NaN()
	events[len(events)-1].Longitude = math.NaN()
	return &dataset.Table{Events: events, Missing: map[string]int{}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderProducesAllFigures(t *testing.T) {
	table := testTable(t)
	result := analysis.Analyze(table)

	dir := t.TempDir()
	console := &bytes.Buffer{}
	r := NewRenderer(dir, console, discardLogger())

	require.NoError(t, r.Render(table, result))

	for _, name := range Files {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
		assert.Contains(t, console.String(), "✓ Saved: "+name)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	table := testTable(t)
	result := analysis.Analyze(table)

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, NewRenderer(dirA, io.Discard, discardLogger()).Render(table, result))
	require.NoError(t, NewRenderer(dirB, io.Discard, discardLogger()).Render(table, result))

	for _, name := range Files {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(a, b), "%s differs between runs", name)
	}
}

func TestRenderMissingDirectory(t *testing.T) {
	table := testTable(t)
	result := analysis.Analyze(table)

	r := NewRenderer(filepath.Join(t.TempDir(), "does-not-exist"), io.Discard, discardLogger())
	err := r.Render(table, result)
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, TemporalFile, renderErr.File)
}

func TestFigureBuildersHandleEmptyTable(t *testing.T) {
	table := &dataset.Table{Missing: map[string]int{}}
	result := analysis.Analyze(table)

	for _, tc := range []struct {
		name  string
		build func() error
	}{
		{"temporal", func() error { _, err := temporalFigure(table, result); return err }},
		{"country_purpose", func() error { _, err := countryPurposeFigure(table, result); return err }},
		{"yield", func() error { _, err := yieldFigure(table, result); return err }},
		{"geographic", func() error { _, err := geographicFigure(table, result); return err }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.build())
		})
	}
}

func TestTopKeysAndReverse(t *testing.T) {
	counts := []analysis.CountItem{{Key: "a", Count: 5}, {Key: "b", Count: 3}, {Key: "c", Count: 1}}

	assert.Equal(t, []string{"a", "b"}, topKeys(counts, 2))
	assert.Equal(t, []string{"a", "b", "c"}, topKeys(counts, 10))

	rev := reverseCounts(counts)
	assert.Equal(t, "c", rev[0].Key)
	assert.Equal(t, "a", rev[2].Key)
	assert.Equal(t, "a", counts[0].Key)
}

func TestLogYieldsExcludesNonPositive(t *testing.T) {
	table := testTable(t)

	vals := logYields(table, "")
	// CHIC-3 has a zero yield and must be excluded.
	assert.Len(t, vals, len(table.Events)-1)
	for _, v := range vals {
		assert.False(t, math.IsNaN(v))
	}

	usa := logYields(table, "USA")
	assert.Len(t, usa, 3)
}
