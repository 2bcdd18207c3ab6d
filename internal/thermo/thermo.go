// Package thermo evaluates ideal air-standard Otto and Diesel cycles.
//
// States are numbered as in the textbooks: 1 start of compression, 2 end of
// compression, 3 end of heat addition, 4 end of expansion.
package thermo

import (
	"fmt"
	"math"

	"github.com/san-kum/mechcalc/internal/mech"
)

// Air properties.
const (
	R     = 287.1 // J/(kg·K)
	Gamma = 1.4
)

// Kind names an air-standard cycle.
type Kind string

const (
	Otto   Kind = "otto"
	Diesel Kind = "diesel"
)

// ParseKind accepts "otto" or "diesel".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Otto, Diesel:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown cycle: %s (available: otto, diesel)", s)
}

// State is one corner of the PV diagram.
type State struct {
	V float64 `json:"v"` // m³
	T float64 `json:"t"` // K
	P float64 `json:"p"` // Pa
}

// Inlet is the state at the start of compression.
type Inlet State

type Cycle struct {
	Kind             Kind
	CompressionRatio float64
	CutoffRatio      float64
	Heat             float64 // J/kg added at constant volume (Otto only)
	States           [4]State
	Efficiency       float64
}

func (in Inlet) validate() error {
	if err := mech.RequirePositive("v1", in.V); err != nil {
		return err
	}
	if err := mech.RequirePositive("t1", in.T); err != nil {
		return err
	}
	return mech.RequirePositive("p1", in.P)
}

func requireCompression(rc float64) error {
	if err := mech.RequireFinite("compression_ratio", rc); err != nil {
		return err
	}
	if rc <= 1 {
		return mech.Invalid("compression_ratio", rc, "must exceed 1")
	}
	return nil
}

// compress applies isentropic compression 1 -> 2.
func compress(in Inlet, rc float64) (State, State) {
	s1 := State(in)
	s2 := State{
		V: in.V / rc,
		T: in.T * math.Pow(rc, Gamma-1),
		P: in.P * math.Pow(rc, Gamma),
	}
	return s1, s2
}

// NewOtto builds an Otto cycle adding heat q (J/kg) at constant volume.
func NewOtto(in Inlet, rc, q float64) (*Cycle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireCompression(rc); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("heat", q); err != nil {
		return nil, err
	}
	if q < 0 {
		return nil, mech.Invalid("heat", q, "must not be negative")
	}

	s1, s2 := compress(in, rc)
	t3 := s2.T + q/cv()
	s3 := State{V: s2.V, T: t3, P: s2.P * t3 / s2.T}
	s4 := State{
		V: s1.V,
		T: s3.T * math.Pow(rc, 1-Gamma),
		P: s3.P * math.Pow(rc, -Gamma),
	}

	return &Cycle{
		Kind:             Otto,
		CompressionRatio: rc,
		Heat:             q,
		States:           [4]State{s1, s2, s3, s4},
		Efficiency:       1 - math.Pow(rc, 1-Gamma),
	}, nil
}

// NewDiesel builds a Diesel cycle with cut-off ratio rcut = V3/V2.
func NewDiesel(in Inlet, rc, rcut float64) (*Cycle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireCompression(rc); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("cutoff_ratio", rcut); err != nil {
		return nil, err
	}
	if rcut <= 1 || rcut >= rc {
		return nil, mech.Invalid("cutoff_ratio", rcut, "must lie between 1 and the compression ratio")
	}

	s1, s2 := compress(in, rc)
	s3 := State{V: s2.V * rcut, T: s2.T * rcut, P: s2.P}
	expansion := s3.V / s1.V
	s4 := State{
		V: s1.V,
		T: s3.T * math.Pow(expansion, Gamma-1),
		P: s3.P * math.Pow(expansion, Gamma),
	}

	eff := 1 - math.Pow(rc, 1-Gamma)*(math.Pow(rcut, Gamma)-1)/(Gamma*(rcut-1))
	return &Cycle{
		Kind:             Diesel,
		CompressionRatio: rc,
		CutoffRatio:      rcut,
		States:           [4]State{s1, s2, s3, s4},
		Efficiency:       eff,
	}, nil
}

func cv() float64 { return R / (Gamma - 1) }
func cp() float64 { return Gamma * R / (Gamma - 1) }

// HeatIn is the heat added per unit mass, J/kg.
func (c *Cycle) HeatIn() float64 {
	if c.Kind == Diesel {
		return cp() * (c.States[2].T - c.States[1].T)
	}
	return cv() * (c.States[2].T - c.States[1].T)
}

// HeatOut is the heat rejected per unit mass during 4 -> 1, J/kg.
func (c *Cycle) HeatOut() float64 {
	return cv() * (c.States[3].T - c.States[0].T)
}

// Work is the net specific work, J/kg.
func (c *Cycle) Work() float64 {
	return c.HeatIn() - c.HeatOut()
}

// Series returns the PV diagram: two isentropes sampled with n points each
// and the two straight heat-exchange legs.
func (c *Cycle) Series(n int) ([]mech.Series, error) {
	if n < 2 {
		return nil, mech.Invalid("samples", float64(n), "must be at least 2")
	}

	s := c.States
	const xLabel, yLabel = "Volume (m³)", "Pressure (Pa)"

	compression := mech.Map("Compression", xLabel, yLabel, mech.Span(n, s[1].V, s[0].V), func(v float64) float64 {
		return s[0].P * math.Pow(s[0].V/v, Gamma)
	})
	expansion := mech.Map("Expansion", xLabel, yLabel, mech.Span(n, s[2].V, s[3].V), func(v float64) float64 {
		return s[2].P * math.Pow(s[2].V/v, Gamma)
	})

	return []mech.Series{
		compression,
		{Name: "Combustion", XLabel: xLabel, YLabel: yLabel, X: []float64{s[1].V, s[2].V}, Y: []float64{s[1].P, s[2].P}},
		expansion,
		{Name: "Exhaust", XLabel: xLabel, YLabel: yLabel, X: []float64{s[3].V, s[0].V}, Y: []float64{s[3].P, s[0].P}},
	}, nil
}
