package viz

import (
	"bytes"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mechcalc/internal/crank"
	"github.com/san-kum/mechcalc/internal/mech"
)

func init() {
	DisableColor()
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	if !c.IsSet(0, 0) || !c.IsSet(19, 19) {
		t.Error("expected line endpoints to be set")
	}
	if !c.IsSet(10, 10) {
		t.Error("expected diagonal pixel to be set")
	}
	if c.IsSet(19, 0) {
		t.Error("expected off-line pixel to be clear")
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("expected clear canvas")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(100, 100)
	if strings.Count(c.String(), "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", c.String())
	}
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("expected out-of-range sets to be ignored")
			}
		}
	}
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)
	if !c.IsSet(28, 20) || !c.IsSet(12, 20) || !c.IsSet(20, 12) {
		t.Error("expected cardinal points of the circle to be set")
	}
	if c.IsSet(20, 20) {
		t.Error("expected circle centre to be clear")
	}
}

func TestReport(t *testing.T) {
	out := NewReport("Shaft").
		Value("min diameter", 0.0370672, "m").
		Text("material", "steel", "").
		Warn("diameter rounded up").
		String()

	for _, want := range []string{"Shaft", "min diameter", "0.0370672", "m", "material", "steel", "! diameter rounded up"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q, got:\n%s", want, out)
		}
	}

	var buf bytes.Buffer
	if err := NewReport("empty").Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "empty") {
		t.Error("expected title in rendered output")
	}
}

func TestPlot(t *testing.T) {
	m, _ := crank.New(0.05, 0.2, 50)
	samples, _ := m.Samples(200, 2)

	var buf bytes.Buffer
	opts := DefaultPlotOptions()
	opts.Color = false
	if err := Plot(&buf, crank.Series(samples), opts); err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Piston position", "Piston velocity", "Piston acceleration", "Angle (rad)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected chart caption %q", want)
		}
	}
}

func TestChartEmpty(t *testing.T) {
	if Chart(mech.Series{}, DefaultPlotOptions(), 0) != "" {
		t.Error("expected empty chart for empty series")
	}
}

func TestScatter(t *testing.T) {
	s := mech.Map("line", "x", "y", mech.Span(10, 1, 100), func(x float64) float64 { return x * x })

	out := Scatter([]mech.Series{s}, ScatterOptions{Width: 30, Height: 8})
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Errorf("expected framed plot, got:\n%s", out)
	}
	if !strings.Contains(out, "y vs x") {
		t.Error("expected axis labels")
	}

	logOut := Scatter([]mech.Series{s}, ScatterOptions{Width: 30, Height: 8, LogX: true, LogY: true})
	if !strings.Contains(logOut, "(log)") {
		t.Error("expected log marker")
	}
	if !strings.Contains(logOut, "1e+04") {
		t.Errorf("expected untransformed upper bound, got:\n%s", logOut)
	}

	if Scatter(nil, ScatterOptions{Width: 10, Height: 4}) != "" {
		t.Error("expected empty output without data")
	}
}

func TestSparkline(t *testing.T) {
	out := SparklineChart([]float64{0, 1, 2, 3}, 4)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("expected low and high bars, got %q", out)
	}
	if SparklineChart(nil, 3) != "───" {
		t.Error("expected flat line for no data")
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme("blueprint")

	SetTheme("workshop")
	if CurrentTheme.Name != "workshop" {
		t.Errorf("expected workshop, got %s", CurrentTheme.Name)
	}
	NextTheme()
	if CurrentTheme.Name != "mono" {
		t.Errorf("expected mono after workshop, got %s", CurrentTheme.Name)
	}
	NextTheme()
	if CurrentTheme.Name != "blueprint" {
		t.Errorf("expected wrap to blueprint, got %s", CurrentTheme.Name)
	}
	if GetTheme("unknown").Name != "blueprint" {
		t.Error("expected fallback theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected a name per theme")
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestExplorerKeys(t *testing.T) {
	m, _ := crank.New(0.05, 0.2, 50)
	e := NewExplorer(m)

	next, _ := e.Update(tea.KeyMsg{Type: tea.KeySpace})
	e = next.(Explorer)
	if e.Running() {
		t.Error("expected space to pause")
	}

	next, _ = e.Update(tea.KeyMsg{Type: tea.KeyRight})
	e = next.(Explorer)
	if math.Abs(e.Theta()-angleStep) > 1e-12 {
		t.Errorf("expected theta %f, got %f", angleStep, e.Theta())
	}

	next, _ = e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	e = next.(Explorer)
	next, _ = e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	e = next.(Explorer)
	if math.Abs(e.Theta()-(2*math.Pi-angleStep)) > 1e-12 {
		t.Errorf("expected theta to wrap to %f, got %f", 2*math.Pi-angleStep, e.Theta())
	}

	next, _ = e.Update(tea.KeyMsg{Type: tea.KeyUp})
	e = next.(Explorer)
	if math.Abs(e.Model().AngularVelocity()-52.5) > 1e-9 {
		t.Errorf("expected omega 52.5, got %f", e.Model().AngularVelocity())
	}
	if m.AngularVelocity() != 50 {
		t.Error("expected initial model untouched")
	}

	next, _ = e.Update(keyRune('r'))
	e = next.(Explorer)
	if e.Theta() != 0 || e.Model() != m || len(e.History()) != 0 {
		t.Error("expected reset to restore initial state")
	}

	_, cmd := e.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestExplorerTick(t *testing.T) {
	m, _ := crank.New(0.05, 0.2, 50)
	e := NewExplorer(m)

	next, cmd := e.Update(TickMsg{})
	e = next.(Explorer)
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	if e.Theta() <= 0 {
		t.Error("expected running explorer to advance")
	}
	if len(e.History()) != 1 {
		t.Errorf("expected one history entry, got %d", len(e.History()))
	}

	for i := 0; i < historyCapacity+10; i++ {
		next, _ = e.Update(TickMsg{})
		e = next.(Explorer)
	}
	if len(e.History()) != historyCapacity {
		t.Errorf("expected history capped at %d, got %d", historyCapacity, len(e.History()))
	}
}

func TestExplorerView(t *testing.T) {
	m, _ := crank.New(0.05, 0.2, 50)
	e := NewExplorer(m)
	next, _ := e.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.(Explorer).Update(tea.KeyMsg{Type: tea.KeyRight})

	view := next.(Explorer).View()
	for _, want := range []string{"SLIDER-CRANK", "position", "velocity", "omega", "rad/s", "?:Help"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestChartCaptionRanges(t *testing.T) {
	s := mech.Series{Name: "lift", XLabel: "x", YLabel: "y", X: []float64{0, 1, 2}, Y: []float64{1, 5, 3}}
	opts := DefaultPlotOptions()
	opts.Color = false

	out := Chart(s, opts, 0)
	if !strings.Contains(out, "y [1 .. 5] vs x [0 .. 2]") {
		t.Errorf("expected y and x ranges in caption, got:\n%s", out)
	}
}
