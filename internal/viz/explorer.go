package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mechcalc/internal/crank"
)

const (
	explorerWidth   = 60
	explorerHeight  = 12
	historyCapacity = 240
	frameRate       = 30
	angleStep       = math.Pi / 36
	// Screen time is slowed so fast cranks stay readable.
	timeScale = 0.02
)

type TickMsg time.Time

// Explorer animates a slider-crank and shows its live kinematics.
type Explorer struct {
	model    *crank.Model
	initial  *crank.Model
	theta    float64
	running  bool
	canvas   *Canvas
	history  []float64
	lastErr  error
	showHelp bool
}

func NewExplorer(m *crank.Model) Explorer {
	return Explorer{
		model:   m,
		initial: m,
		running: true,
		canvas:  NewCanvas(explorerWidth, explorerHeight),
		history: make([]float64, 0, historyCapacity),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (e Explorer) Init() tea.Cmd {
	return tick()
}

func (e Explorer) Theta() float64      { return e.theta }
func (e Explorer) Running() bool       { return e.running }
func (e Explorer) Model() *crank.Model { return e.model }
func (e Explorer) History() []float64  { return e.history }

// Update handles input and advances the crank on every tick.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case " ":
			e.running = !e.running
		case "left", "h":
			e.advance(-angleStep)
		case "right", "l":
			e.advance(angleStep)
		case "up", "k":
			e.tune(1.05)
		case "down", "j":
			e.tune(0.95)
		case "r":
			e.reset()
		case "t":
			NextTheme()
		case "?":
			e.showHelp = !e.showHelp
		}
	case TickMsg:
		if e.running {
			e.advance(e.model.AngularVelocity() * timeScale / frameRate)
		}
		return e, tick()
	}
	return e, nil
}

// advance moves the crank by dTheta, keeping theta in [0, 2π).
func (e *Explorer) advance(dTheta float64) {
	e.theta = math.Mod(e.theta+dTheta, 2*math.Pi)
	if e.theta < 0 {
		e.theta += 2 * math.Pi
	}
	e.history = append(e.history, e.model.Position(e.theta))
	if len(e.history) > historyCapacity {
		e.history = e.history[1:]
	}
}

func (e *Explorer) tune(factor float64) {
	m, err := e.model.WithAngularVelocity(e.model.AngularVelocity() * factor)
	if err != nil {
		e.lastErr = err
		return
	}
	e.model = m
	e.lastErr = nil
}

func (e *Explorer) reset() {
	e.model = e.initial
	e.theta = 0
	e.history = e.history[:0]
	e.lastErr = nil
}

// draw renders the mechanism: crank circle, crank arm, rod and piston.
func (e *Explorer) draw() {
	c := e.canvas
	c.Clear()

	r, l := e.model.CrankRadius(), e.model.RodLength()
	pw, ph := c.Width*2, c.Height*4
	pistonHalf := 0.15 * l
	scale := math.Min(float64(pw-4)/(2*r+l+2*pistonHalf), float64(ph-4)/(2*r))

	cx := 2 + int(math.Round(r*scale))
	cy := ph / 2
	toScreen := func(x, y float64) (int, int) {
		return cx + int(math.Round(x*scale)), cy - int(math.Round(y*scale))
	}

	c.DrawCircle(cx, cy, int(math.Round(r*scale)))

	pinX, pinY := toScreen(r*math.Cos(e.theta), r*math.Sin(e.theta))
	c.DrawLine(cx, cy, pinX, pinY)

	pistonX, pistonY := toScreen(e.model.Position(e.theta), 0)
	c.DrawLine(pinX, pinY, pistonX, pistonY)

	half := int(math.Round(pistonHalf * scale))
	c.DrawRect(pistonX, pistonY-half, pistonX+2*half, pistonY+half)

	// Line of stroke between the dead centres.
	odcX, _ := toScreen(r+l, 0)
	idcX, _ := toScreen(l-r, 0)
	for x := idcX; x <= odcX+2*half; x += 3 {
		c.Set(x, cy+half+2)
	}
}

func (e Explorer) View() string {
	e.draw()

	s := e.model.At(e.theta)
	status := "RUNNING"
	if !e.running {
		status = "PAUSED"
	}

	var b strings.Builder
	b.WriteString(titleStyle().Render("SLIDER-CRANK") + "\n")
	b.WriteString(hintStyle().Render(status) + "\n\n")

	row := func(label, value, unit string) {
		b.WriteString(labelStyle().Width(10).Render(label) +
			valueStyle().Width(12).Align(lipgloss.Right).Render(value) + " " +
			unitStyle().Render(unit) + "\n")
	}
	row("angle", fmt.Sprintf("%.1f", s.Theta*180/math.Pi), "deg")
	row("position", fmt.Sprintf("%.5f", s.Position), "m")
	row("velocity", fmt.Sprintf("%.4f", s.Velocity), "m/s")
	row("accel", fmt.Sprintf("%.2f", s.Acceleration), "m/s²")
	row("omega", fmt.Sprintf("%.2f", e.model.AngularVelocity()), "rad/s")
	row("r / L", fmt.Sprintf("%.3f", e.model.Ratio()), "")

	if len(e.history) > 1 {
		chart := asciigraph.Plot(e.history, asciigraph.Height(5), asciigraph.Width(36), asciigraph.Caption("position"))
		b.WriteString("\n" + chart + "\n")
	}
	if e.lastErr != nil {
		b.WriteString("\n" + warningStyle().Render(e.lastErr.Error()) + "\n")
	}
	b.WriteString("\n" + hintStyle().Render("SP:Pause ←→:Step ↑↓:Omega R:Reset T:Theme ?:Help Q:Quit"))

	mechanism := panelStyle().Render(e.canvas.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, mechanism, "  ", b.String())
	if e.showHelp {
		help := panelStyle().Render(strings.Join([]string{
			"Space  pause / resume rotation",
			"← →    step crank angle by 5°",
			"↑ ↓    angular velocity ±5%",
			"R      reset angle and speed",
			"T      cycle themes",
			"?      toggle this help",
			"Q      quit",
		}, "\n"))
		return help + "\n\n" + view
	}
	return view
}

// RunExplorer blocks until the user quits.
func RunExplorer(m *crank.Model) error {
	p := tea.NewProgram(NewExplorer(m))
	_, err := p.Run()
	return err
}
