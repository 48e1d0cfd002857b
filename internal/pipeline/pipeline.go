// Package pipeline runs the fixed analysis sequence: load the dataset, compute
// the aggregates, print the sectioned report with key insights, and render the
// figures.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/chart"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
	"github.com/couchcryptid/nuclear-test-analysis/internal/observability"
	"github.com/couchcryptid/nuclear-test-analysis/internal/report"
)

// Loader produces the event table from the input file.
type Loader interface {
	Load(path string) (*dataset.Table, error)
}

// Renderer draws the figures for a table and its aggregate results.
type Renderer interface {
	Render(table *dataset.Table, result analysis.Result) error
}

// Pipeline orchestrates one analysis run.
type Pipeline struct {
	loader   Loader
	renderer Renderer
	console  *report.Console
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, r Renderer, console *report.Console, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:   l,
		renderer: r,
		console:  console,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes the full analysis against the dataset at inputPath. The stages
// are sequential; the first failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, inputPath string) error {
	p.logger.Info("analysis started", "input", inputPath)

	var table *dataset.Table
	err := p.timeStage("load", func() error {
		p.console.Banner("NUCLEAR EXPLOSIONS DATA ANALYSIS")

		var err error
		table, err = p.loader.Load(inputPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		p.metrics.RowsLoaded.Add(float64(table.Len()))
		p.metrics.RowsSkipped.Add(float64(table.RowsSkipped))
		table.WriteOverview(p.console.Writer())
		return nil
	})
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var result analysis.Result
	err = p.timeStage("analyze", func() error {
		result = analysis.Analyze(table)
		return nil
	})
	if err != nil {
		return err
	}

	err = p.timeStage("report", func() error {
		p.console.Banner("COUNTRY-WISE ANALYSIS")
		p.console.WriteCountrySection(result.Country)

		p.console.Banner("TEMPORAL ANALYSIS")
		p.console.WriteTemporalSection(result.Temporal)

		p.console.Banner("PURPOSE AND TYPE ANALYSIS")
		p.console.WritePurposeTypeSection(result.PurposeType)

		p.console.Banner("YIELD ANALYSIS")
		p.console.WriteYieldSection(result.Yield)

		p.console.Banner("KEY INSIGHTS & FINDINGS")
		p.console.WriteInsights(report.BuildInsights(table, result))
		return nil
	})
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	err = p.timeStage("render", func() error {
		p.console.Banner("GENERATING VISUALIZATIONS")
		if err := p.renderer.Render(table, result); err != nil {
			return fmt.Errorf("render figures: %w", err)
		}
		p.metrics.ChartsRendered.Add(float64(len(chart.Files)))
		return nil
	})
	if err != nil {
		return err
	}

	p.console.Banner("ANALYSIS COMPLETE!")
	p.console.Println("\nGenerated files:")
	for _, name := range chart.Files {
		p.console.Println("  -", name)
	}
	p.console.Println("\nThank you for using Nuclear Explosions Analysis Tool!")

	p.logger.Info("analysis complete", "events", table.Len(), "figures", len(chart.Files))
	return nil
}

// timeStage runs fn and records its duration under the stage label.
func (p *Pipeline) timeStage(stage string, fn func() error) error {
	start := domain.Clock().Now()
	err := fn()
	p.metrics.StageDuration.WithLabelValues(stage).Observe(domain.Clock().Since(start).Seconds())
	if err != nil {
		p.logger.Error("stage failed", "stage", stage, "error", err)
		return err
	}
	p.logger.Info("stage complete", "stage", stage)
	return nil
}
