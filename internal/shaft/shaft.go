// Package shaft sizes solid circular shafts loaded in pure torsion.
package shaft

import (
	"math"

	"github.com/san-kum/mechcalc/internal/mech"
)

// DefaultSafety is applied when no safety factor is given.
const DefaultSafety = 2.0

type Shaft struct {
	torque float64 // N·m
	yield  float64 // Pa
	safety float64
}

// New builds a shaft carrying torque (N·m) in a material of yield strength
// Re (Pa), sized with the given safety factor.
func New(torque, yield, safety float64) (*Shaft, error) {
	if err := mech.RequirePositive("torque", torque); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("yield", yield); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("safety", safety); err != nil {
		return nil, err
	}
	return &Shaft{torque: torque, yield: yield, safety: safety}, nil
}

func (s *Shaft) Torque() float64 { return s.torque }
func (s *Shaft) Yield() float64  { return s.yield }
func (s *Shaft) Safety() float64 { return s.safety }

// AllowableShear uses the Tresca criterion: τ = Re / (2·s).
func (s *Shaft) AllowableShear() float64 {
	return s.yield / (2 * s.safety)
}

// MinDiameter is the smallest diameter, in metres, keeping shear at or
// below the allowable value.
func (s *Shaft) MinDiameter() float64 {
	return math.Cbrt(16 * s.torque / (math.Pi * s.AllowableShear()))
}

// ShearStress returns the peak surface shear for diameter d, in Pa.
func (s *Shaft) ShearStress(d float64) (float64, error) {
	if err := mech.RequirePositive("diameter", d); err != nil {
		return 0, err
	}
	return 16 * s.torque / (math.Pi * d * d * d), nil
}

// Series traces shear stress over a range of diameters.
func (s *Shaft) Series(dMin, dMax float64, n int) ([]mech.Series, error) {
	if err := mech.RequireSamples(n); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("d_min", dMin); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("d_max", dMax); err != nil {
		return nil, err
	}
	if dMax <= dMin {
		return nil, mech.Invalid("d_max", dMax, "must exceed d_min")
	}

	stress := mech.Map("Shear stress", "Diameter (m)", "Stress (Pa)", mech.Span(n, dMin, dMax), func(d float64) float64 {
		return 16 * s.torque / (math.Pi * d * d * d)
	})
	limit := mech.Map("Allowable", "Diameter (m)", "Stress (Pa)", []float64{dMin, dMax}, func(float64) float64 {
		return s.AllowableShear()
	})
	return []mech.Series{stress, limit}, nil
}
