package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
)

// Pie draws a share distribution as a pie chart. gonum/plot ships no pie
// plotter, so wedges are drawn directly with vg arc paths. Slices start at
// twelve o'clock and run counterclockwise in the order given.
type Pie struct {
	items []analysis.CountItem
	total float64
}

// NewPie creates a pie over the given counts. Zero-count items are kept but
// produce no visible wedge.
func NewPie(items []analysis.CountItem) *Pie {
	total := 0.0
	for _, it := range items {
		total += float64(it.Count)
	}
	return &Pie{items: items, total: total}
}

// Plot implements plot.Plotter.
func (pie *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	if pie.total == 0 {
		return
	}

	center := vg.Point{
		X: (c.Min.X + c.Max.X) / 2,
		Y: (c.Min.Y + c.Max.Y) / 2,
	}
	halfW := (c.Max.X - c.Min.X) / 2
	halfH := (c.Max.Y - c.Min.Y) / 2
	radius := halfW
	if halfH < radius {
		radius = halfH
	}
	radius *= 0.72

	labelStyle := plt.Title.TextStyle
	labelStyle.Font.Size = vg.Points(9)
	labelStyle.XAlign = text.XCenter
	labelStyle.YAlign = text.YCenter
	labelStyle.Color = color.Black

	angle := math.Pi / 2 // twelve o'clock, matching the usual start angle
	for i, it := range pie.items {
		frac := float64(it.Count) / pie.total
		delta := frac * 2 * math.Pi

		var path vg.Path
		path.Move(center)
		path.Line(vg.Point{
			X: center.X + radius*vg.Length(math.Cos(angle)),
			Y: center.Y + radius*vg.Length(math.Sin(angle)),
		})
		path.Arc(center, radius, angle, delta)
		path.Close()

		c.SetColor(plotutil.Color(i))
		c.Fill(path)

		if frac > 0.01 {
			mid := angle + delta/2
			at := vg.Point{
				X: center.X + radius*0.65*vg.Length(math.Cos(mid)),
				Y: center.Y + radius*0.65*vg.Length(math.Sin(mid)),
			}
			c.FillText(labelStyle, at, fmt.Sprintf("%s %.1f%%", it.Key, frac*100))
		}

		angle += delta
	}
}

// DataRange implements plot.DataRanger so the axes (hidden by callers) do
// not collapse.
func (pie *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// piePanel builds one hidden-axis panel holding a pie of the given counts.
func piePanel(title string, items []analysis.CountItem) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(NewPie(items))
	return p
}
