// Package chart renders the four analysis figures as multi-panel PNG files
// using gonum/plot. Each figure is a deterministic function of the table and
// the aggregate results; files are overwritten on every run.
package chart

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

// Fixed output file names, one per figure.
const (
	TemporalFile       = "temporal_analysis.png"
	CountryPurposeFile = "country_purpose_analysis.png"
	YieldFile          = "yield_analysis.png"
	GeographicFile     = "geographic_analysis.png"
)

// Files lists the figures in render order.
var Files = []string{TemporalFile, CountryPurposeFile, YieldFile, GeographicFile}

// RenderError reports a figure that could not be composed or written.
// Rendering failures are fatal for the run.
type RenderError struct {
	File string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.File, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Renderer draws the four figures into an output directory.
type Renderer struct {
	outputDir string
	console   io.Writer
	logger    *slog.Logger
}

// NewRenderer creates a Renderer. Save confirmations go to console; outputDir
// must already exist.
func NewRenderer(outputDir string, console io.Writer, logger *slog.Logger) *Renderer {
	return &Renderer{outputDir: outputDir, console: console, logger: logger}
}

// Render produces all four figures. The first failure aborts; there is no
// partial-results mode.
func (r *Renderer) Render(table *dataset.Table, result analysis.Result) error {
	figures := []struct {
		file  string
		build func(*dataset.Table, analysis.Result) ([][]*plot.Plot, error)
		w, h  vg.Length
	}{
		{TemporalFile, temporalFigure, 16 * vg.Inch, 12 * vg.Inch},
		{CountryPurposeFile, countryPurposeFigure, 16 * vg.Inch, 12 * vg.Inch},
		{YieldFile, yieldFigure, 16 * vg.Inch, 12 * vg.Inch},
		{GeographicFile, geographicFigure, 16 * vg.Inch, 6 * vg.Inch},
	}

	for _, fig := range figures {
		panels, err := fig.build(table, result)
		if err != nil {
			return &RenderError{File: fig.file, Err: err}
		}
		if err := r.writeFigure(fig.file, panels, fig.w, fig.h); err != nil {
			return err
		}
		fmt.Fprintf(r.console, "✓ Saved: %s\n", fig.file)
		r.logger.Info("figure rendered", "file", fig.file)
	}
	return nil
}

// writeFigure tiles the panels onto one canvas and encodes it as PNG.
func (r *Renderer) writeFigure(name string, panels [][]*plot.Plot, width, height vg.Length) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      len(panels[0]),
		PadX:      vg.Millimeter * 5,
		PadY:      vg.Millimeter * 5,
		PadTop:    vg.Millimeter * 5,
		PadBottom: vg.Millimeter * 5,
		PadLeft:   vg.Millimeter * 5,
		PadRight:  vg.Millimeter * 5,
	}

	canvases := plot.Align(panels, tiles, dc)
	for i := range panels {
		for j := range panels[i] {
			if panels[i][j] != nil {
				panels[i][j].Draw(canvases[i][j])
			}
		}
	}

	path := filepath.Join(r.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return &RenderError{File: name, Err: err}
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return &RenderError{File: name, Err: err}
	}
	return nil
}
