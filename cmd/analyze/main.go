// Command analyze loads the nuclear explosions dataset, prints the full
// console report, and renders the four analysis figures as PNG files.
//
// Usage:
//
//	go run ./cmd/analyze
//
// INPUT_PATH and OUTPUT_DIR override the dataset location and the figure
// directory; LOG_LEVEL and LOG_FORMAT control the operational log on stderr.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/nuclear-test-analysis/internal/chart"
	"github.com/couchcryptid/nuclear-test-analysis/internal/config"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/observability"
	"github.com/couchcryptid/nuclear-test-analysis/internal/pipeline"
	"github.com/couchcryptid/nuclear-test-analysis/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	console := report.NewConsole(os.Stdout)
	loader := dataset.NewLoader(logger)
	renderer := chart.NewRenderer(cfg.OutputDir, console.Writer(), logger)

	p := pipeline.New(loader, renderer, console, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx, cfg.InputPath); err != nil {
		logFailure(logger, err)
		metrics.LogSummary(logger)
		os.Exit(1)
	}

	metrics.LogSummary(logger)
}

// logFailure maps the typed pipeline errors to specific diagnostics.
func logFailure(logger *slog.Logger, err error) {
	var loadErr *dataset.DataLoadError
	var colErr *dataset.MissingColumnError
	var renderErr *chart.RenderError

	switch {
	case errors.As(err, &colErr):
		logger.Error("dataset schema mismatch", "column", colErr.Column)
	case errors.As(err, &loadErr):
		logger.Error("dataset unreadable", "path", loadErr.Path, "error", loadErr.Err)
	case errors.As(err, &renderErr):
		logger.Error("figure rendering failed", "file", renderErr.File, "error", renderErr.Err)
	default:
		logger.Error("analysis failed", "error", err)
	}
}
