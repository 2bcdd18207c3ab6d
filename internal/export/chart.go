package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/mechcalc/internal/mech"
)

type ChartOptions struct {
	Title string
	// Width and Height are per panel, in inches.
	Width  float64
	Height float64
	// Overlay draws every series in one panel with a legend instead of one
	// panel per series.
	Overlay bool
	LogX    bool
	LogY    bool
}

func DefaultChartOptions(title string) ChartOptions {
	return ChartOptions{Title: title, Width: 10, Height: 4}
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(6)
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.X.Tick.Label.Font.Size = vg.Points(9)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
	p.Add(plotter.NewGrid())
}

func xys(s mech.Series) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts
}

func newPanel(title, xLabel, yLabel string, opts ChartOptions) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	stylePlot(p)
	return p
}

func addLine(p *plot.Plot, s mech.Series, idx int) (*plotter.Line, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("series %q is empty", s.Name)
	}
	line, err := plotter.NewLine(xys(s))
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", s.Name, err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = plotutil.Color(idx)
	p.Add(line)
	return line, nil
}

// panels lays the series out as one plot per row, or one overlaid plot.
func panels(series []mech.Series, opts ChartOptions) ([]*plot.Plot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no data to plot")
	}

	if opts.Overlay {
		p := newPanel(opts.Title, series[0].XLabel, series[0].YLabel, opts)
		for i, s := range series {
			line, err := addLine(p, s, i)
			if err != nil {
				return nil, err
			}
			p.Legend.Add(s.Name, line)
		}
		p.Legend.Top = true
		return []*plot.Plot{p}, nil
	}

	plots := make([]*plot.Plot, len(series))
	for i, s := range series {
		title := s.Name
		if i == 0 && opts.Title != "" {
			title = opts.Title + ": " + s.Name
		}
		p := newPanel(title, s.XLabel, s.YLabel, opts)
		if _, err := addLine(p, s, i); err != nil {
			return nil, err
		}
		plots[i] = p
	}
	return plots, nil
}

// WriteChart renders series in format ("png", "svg", "pdf", ...) to w.
func WriteChart(w io.Writer, format string, series []mech.Series, opts ChartOptions) error {
	plots, err := panels(series, opts)
	if err != nil {
		return err
	}

	width := vg.Length(opts.Width) * vg.Inch
	height := vg.Length(opts.Height) * vg.Inch * vg.Length(len(plots))
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return fmt.Errorf("chart format %q: %w", format, err)
	}

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}
	canvases := plot.Align(grid, tiles, draw.New(c))
	for i := range plots {
		plots[i].Draw(canvases[i][0])
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
