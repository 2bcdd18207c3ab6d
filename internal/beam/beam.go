// Package beam computes deflection and bending stress of a simply supported
// Euler-Bernoulli beam under a uniformly distributed load.
package beam

import (
	"github.com/san-kum/mechcalc/internal/mech"
)

type Beam struct {
	length  float64 // m
	young   float64 // Pa
	inertia float64 // m⁴
	load    float64 // N/m, positive downwards
}

// RectangleInertia returns the second moment of area b·h³/12.
func RectangleInertia(b, h float64) (float64, error) {
	if err := mech.RequirePositive("width", b); err != nil {
		return 0, err
	}
	if err := mech.RequirePositive("height", h); err != nil {
		return 0, err
	}
	return b * h * h * h / 12, nil
}

// New builds a beam of span length (m), Young's modulus young (Pa), second
// moment inertia (m⁴) and uniform load (N/m, positive downwards).
func New(length, young, inertia, load float64) (*Beam, error) {
	if err := mech.RequirePositive("length", length); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("young", young); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("inertia", inertia); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("load", load); err != nil {
		return nil, err
	}
	return &Beam{length: length, young: young, inertia: inertia, load: load}, nil
}

func (b *Beam) Length() float64  { return b.length }
func (b *Beam) Inertia() float64 { return b.inertia }

// stiffness is 24·E·I.
func (b *Beam) stiffness() float64 {
	return 24 * b.young * b.inertia
}

func (b *Beam) deflection(x float64) float64 {
	l := b.length
	return b.load * x * (l*l*l - 2*l*x*x + x*x*x) / b.stiffness()
}

// Deflection at distance x from the left support.
func (b *Beam) Deflection(x float64) (float64, error) {
	if err := mech.RequireFinite("x", x); err != nil {
		return 0, err
	}
	if x < 0 || x > b.length {
		return 0, mech.Invalid("x", x, "must lie on the span")
	}
	return b.deflection(x), nil
}

// MaxDeflection is the midspan value 5qL⁴/(384EI).
func (b *Beam) MaxDeflection() float64 {
	l2 := b.length * b.length
	return 5 * b.load * l2 * l2 / (384 * b.young * b.inertia)
}

// MaxMoment is the midspan bending moment qL²/8.
func (b *Beam) MaxMoment() float64 {
	return b.load * b.length * b.length / 8
}

// MaxStress is the extreme-fibre bending stress for section height h.
func (b *Beam) MaxStress(h float64) (float64, error) {
	if err := mech.RequirePositive("height", h); err != nil {
		return 0, err
	}
	return b.MaxMoment() * (h / 2) / b.inertia, nil
}

// Series samples the deflection curve at n points along the span.
func (b *Beam) Series(n int) ([]mech.Series, error) {
	if err := mech.RequireSamples(n); err != nil {
		return nil, err
	}
	s := mech.Map("Beam deflection", "Position (m)", "Deflection (m)", mech.Span(n, 0, b.length), b.deflection)
	return []mech.Series{s}, nil
}
