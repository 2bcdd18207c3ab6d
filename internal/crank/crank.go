package crank

import (
	"iter"
	"math"

	"github.com/san-kum/mechcalc/internal/mech"
)

// DefaultCycles is the number of crank revolutions swept by default.
const DefaultCycles = 2.0

// Model is immutable once built by New.
type Model struct {
	r     float64
	l     float64
	omega float64
}

// Sample is the mechanism state at one crank angle.
type Sample struct {
	Theta        float64 `json:"theta"`
	Position     float64 `json:"position"`
	Velocity     float64 `json:"velocity"`
	Acceleration float64 `json:"acceleration"`
}

// New validates the geometry. The rod must be strictly longer than the crank
// or the crank cannot complete a revolution.
func New(crankRadius, rodLength, angularVelocity float64) (*Model, error) {
	if err := mech.RequirePositive("crank_radius", crankRadius); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("rod_length", rodLength); err != nil {
		return nil, err
	}
	if rodLength <= crankRadius {
		return nil, mech.Invalid("rod_length", rodLength, "must exceed crank_radius")
	}
	if err := mech.RequireFinite("angular_velocity", angularVelocity); err != nil {
		return nil, err
	}
	return &Model{r: crankRadius, l: rodLength, omega: angularVelocity}, nil
}

// CrankRadius, RodLength and AngularVelocity return the construction
// parameters in m, m and rad/s.
func (m *Model) CrankRadius() float64     { return m.r }
func (m *Model) RodLength() float64       { return m.l }
func (m *Model) AngularVelocity() float64 { return m.omega }

// Stroke is the distance between the two dead centres.
func (m *Model) Stroke() float64 {
	return 2 * m.r
}

// Ratio returns λ = r/L.
func (m *Model) Ratio() float64 {
	return m.r / m.l
}

// WithAngularVelocity returns a copy turning at omega.
func (m *Model) WithAngularVelocity(omega float64) (*Model, error) {
	return New(m.r, m.l, omega)
}

// rodProjection is sqrt(L² − (r·sinθ)²), the rod length projected on the
// line of stroke.
func (m *Model) rodProjection(theta float64) float64 {
	rs := m.r * math.Sin(theta)
	return mech.SafeSqrt(m.l*m.l - rs*rs)
}

// Position returns piston displacement from the crank centre in metres.
func (m *Model) Position(theta float64) float64 {
	return m.r*math.Cos(theta) + m.rodProjection(theta)
}

// Velocity returns piston velocity in m/s.
func (m *Model) Velocity(theta float64) float64 {
	v := -m.r * m.omega * math.Sin(theta)
	if s := m.rodProjection(theta); s > 0 {
		v -= m.r * m.r * m.omega * math.Sin(2*theta) / (2 * s)
	}
	return v
}

// Acceleration returns piston acceleration in m/s².
//
//	a = −rω²·[cosθ + λ·(cos2θ + λ²sin⁴θ) / (1 − λ²sin²θ)^(3/2)]
func (m *Model) Acceleration(theta float64) float64 {
	lambda := m.Ratio()
	sin := math.Sin(theta)
	sin2 := sin * sin

	bracket := math.Cos(theta)
	if q := mech.SafeSqrt(1 - lambda*lambda*sin2); q > 0 {
		bracket += lambda * (math.Cos(2*theta) + lambda*lambda*sin2*sin2) / (q * q * q)
	}
	return -m.r * m.omega * m.omega * bracket
}

// At evaluates all three quantities at theta.
func (m *Model) At(theta float64) Sample {
	return Sample{
		Theta:        theta,
		Position:     m.Position(theta),
		Velocity:     m.Velocity(theta),
		Acceleration: m.Acceleration(theta),
	}
}

// Cycle returns a lazy sequence of n samples evenly spaced over
// [0, cycles·2π]. The sequence is restartable and deterministic.
func (m *Model) Cycle(n int, cycles float64) (iter.Seq[Sample], error) {
	if err := mech.RequireSamples(n); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("cycles", cycles); err != nil {
		return nil, err
	}

	span := cycles * 2 * math.Pi
	return func(yield func(Sample) bool) {
		for i := 0; i < n; i++ {
			theta := 0.0
			if n > 1 {
				theta = span * float64(i) / float64(n-1)
			}
			if !yield(m.At(theta)) {
				return
			}
		}
	}, nil
}

// Samples collects Cycle into a slice.
func (m *Model) Samples(n int, cycles float64) ([]Sample, error) {
	seq, err := m.Cycle(n, cycles)
	if err != nil {
		return nil, err
	}
	out := make([]Sample, 0, n)
	for s := range seq {
		out = append(out, s)
	}
	return out, nil
}

// Series splits samples into position, velocity and acceleration curves
// against crank angle.
func Series(samples []Sample) []mech.Series {
	theta := make([]float64, len(samples))
	pos := make([]float64, len(samples))
	vel := make([]float64, len(samples))
	acc := make([]float64, len(samples))
	for i, s := range samples {
		theta[i] = s.Theta
		pos[i] = s.Position
		vel[i] = s.Velocity
		acc[i] = s.Acceleration
	}

	const xLabel = "Angle (rad)"
	return []mech.Series{
		{Name: "Piston position", XLabel: xLabel, YLabel: "Position (m)", X: theta, Y: pos},
		{Name: "Piston velocity", XLabel: xLabel, YLabel: "Velocity (m/s)", X: theta, Y: vel},
		{Name: "Piston acceleration", XLabel: xLabel, YLabel: "Acceleration (m/s²)", X: theta, Y: acc},
	}
}

// Extremes holds peak magnitudes over a sweep.
type Extremes struct {
	MaxSpeed float64
	MaxAccel float64
	MinPos   float64
	MaxPos   float64
}

// Peaks scans samples for their extremes.
func Peaks(samples []Sample) Extremes {
	var e Extremes
	for i, s := range samples {
		if i == 0 || s.Position < e.MinPos {
			e.MinPos = s.Position
		}
		if i == 0 || s.Position > e.MaxPos {
			e.MaxPos = s.Position
		}
		e.MaxSpeed = math.Max(e.MaxSpeed, math.Abs(s.Velocity))
		e.MaxAccel = math.Max(e.MaxAccel, math.Abs(s.Acceleration))
	}
	return e
}
