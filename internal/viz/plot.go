package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mechcalc/internal/mech"
)

type PlotOptions struct {
	Width  int
	Height int
	Color  bool
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 10, Color: true}
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Magenta,
}

// Chart renders one series as an asciigraph line chart. Points are plotted
// by index, so X must be evenly spaced.
func Chart(s mech.Series, opts PlotOptions, colorIdx int) string {
	if s.Len() == 0 {
		return ""
	}

	lo, hi := s.Bounds()
	caption := fmt.Sprintf("%s: %s [%.4g .. %.4g] vs %s [%.4g .. %.4g]", s.Name, s.YLabel, lo, hi, s.XLabel, s.X[0], s.X[len(s.X)-1])
	options := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	}
	if opts.Color {
		options = append(options, asciigraph.SeriesColors(seriesColors[colorIdx%len(seriesColors)]))
	}
	return asciigraph.Plot(s.Y, options...)
}

// Plot writes one chart per series.
func Plot(w io.Writer, series []mech.Series, opts PlotOptions) error {
	for i, s := range series {
		graph := Chart(s, opts, i)
		if graph == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}

type ScatterOptions struct {
	Width  int
	Height int
	LogX   bool
	LogY   bool
}

// Scatter draws every series as a polyline in one XY frame. Use it when X is
// not evenly spaced or several curves share an axis, e.g. PV diagrams.
func Scatter(series []mech.Series, opts ScatterOptions) string {
	tx := axisTransform(opts.LogX)
	ty := axisTransform(opts.LogY)

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for i := range s.X {
			x, okx := tx(s.X[i])
			y, oky := ty(s.Y[i])
			if !okx || !oky {
				continue
			}
			xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
			yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
		}
	}
	if math.IsInf(xMin, 1) {
		return ""
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := NewCanvas(opts.Width, opts.Height)
	pw, ph := opts.Width*2-1, opts.Height*4-1
	project := func(x, y float64) (int, int) {
		px := int(math.Round(float64(pw) * (x - xMin) / xRange))
		py := ph - int(math.Round(float64(ph)*(y-yMin)/yRange))
		return px, py
	}

	for _, s := range series {
		havePrev := false
		var prevX, prevY int
		for i := range s.X {
			x, okx := tx(s.X[i])
			y, oky := ty(s.Y[i])
			if !okx || !oky {
				havePrev = false
				continue
			}
			px, py := project(x, y)
			if havePrev {
				canvas.DrawLine(prevX, prevY, px, py)
			} else {
				canvas.Set(px, py)
			}
			prevX, prevY, havePrev = px, py, true
		}
	}

	untransform := func(v float64, log bool) float64 {
		if log {
			return math.Pow(10, v)
		}
		return v
	}

	var b strings.Builder
	top := fmt.Sprintf("%10.4g ┌", untransform(yMax, opts.LogY))
	b.WriteString(top + strings.Repeat("─", opts.Width) + "┐\n")
	lines := strings.Split(strings.TrimSuffix(canvas.String(), "\n"), "\n")
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", 11) + "│" + line + "│\n")
	}
	b.WriteString(fmt.Sprintf("%10.4g └", untransform(yMin, opts.LogY)) + strings.Repeat("─", opts.Width) + "┘\n")
	left := fmt.Sprintf("%.4g", untransform(xMin, opts.LogX))
	right := fmt.Sprintf("%.4g", untransform(xMax, opts.LogX))
	gap := max(opts.Width+2-len(left)-len(right), 1)
	b.WriteString(strings.Repeat(" ", 11) + left + strings.Repeat(" ", gap) + right + "\n")

	if len(series) > 0 {
		b.WriteString(strings.Repeat(" ", 11) + series[0].YLabel + " vs " + series[0].XLabel)
		if opts.LogX || opts.LogY {
			b.WriteString(" (log)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func axisTransform(log bool) func(float64) (float64, bool) {
	if !log {
		return func(v float64) (float64, bool) {
			return v, !math.IsNaN(v) && !math.IsInf(v, 0)
		}
	}
	return func(v float64) (float64, bool) {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return math.Log10(v), true
	}
}
