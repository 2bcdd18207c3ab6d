// Package transmission relates speeds, torques and power across a two-wheel
// belt or chain drive.
package transmission

import (
	"fmt"
	"math"

	"github.com/san-kum/mechcalc/internal/mech"
)

// DefaultEfficiency is the typical mechanical efficiency of a belt drive.
const DefaultEfficiency = 0.95

// Kind names the drive element, belt or chain.
type Kind string

const (
	Belt  Kind = "belt"
	Chain Kind = "chain"
)

// ParseKind accepts "belt" or "chain".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Belt, Chain:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown transmission: %s (available: belt, chain)", s)
}

// Drive is a driving wheel of diameter d1 turning a driven wheel of d2.
// Diameters share a unit; only their ratio matters.
type Drive struct {
	d1, d2 float64
	kind   Kind
}

// New validates both diameters and builds a drive of the given kind.
func New(d1, d2 float64, kind Kind) (*Drive, error) {
	if err := mech.RequirePositive("d1", d1); err != nil {
		return nil, err
	}
	if err := mech.RequirePositive("d2", d2); err != nil {
		return nil, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return &Drive{d1: d1, d2: d2, kind: kind}, nil
}

func (d *Drive) Kind() Kind { return d.kind }

// Ratio is i = d2/d1; above one the drive reduces speed.
func (d *Drive) Ratio() float64 {
	return d.d2 / d.d1
}

// OutputSpeed converts an input speed (rpm) to the driven wheel.
func (d *Drive) OutputSpeed(n1 float64) float64 {
	return n1 / d.Ratio()
}

func requireEfficiency(eff float64) error {
	if err := mech.RequireFinite("efficiency", eff); err != nil {
		return err
	}
	if eff <= 0 || eff > 1 {
		return mech.Invalid("efficiency", eff, "must lie in (0, 1]")
	}
	return nil
}

// OutputTorque returns the driven torque (N·m) for input torque c1.
func (d *Drive) OutputTorque(c1, eff float64) (float64, error) {
	if err := requireEfficiency(eff); err != nil {
		return 0, err
	}
	return c1 * d.Ratio() * eff, nil
}

// Power returns transmitted power in W for input speed n1 (rpm) and
// torque c1 (N·m).
func (d *Drive) Power(n1, c1, eff float64) (float64, error) {
	if err := requireEfficiency(eff); err != nil {
		return 0, err
	}
	omega := n1 * 2 * math.Pi / 60
	return c1 * omega * eff, nil
}

// Series maps input speed to output speed over [nMin, nMax].
func (d *Drive) Series(nMin, nMax float64, n int) ([]mech.Series, error) {
	if err := mech.RequireSamples(n); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("n_min", nMin); err != nil {
		return nil, err
	}
	if err := mech.RequireFinite("n_max", nMax); err != nil {
		return nil, err
	}
	if nMax <= nMin {
		return nil, mech.Invalid("n_max", nMax, "must exceed n_min")
	}

	name := fmt.Sprintf("%s transmission", d.kind)
	s := mech.Map(name, "Input speed (rpm)", "Output speed (rpm)", mech.Span(n, nMin, nMax), d.OutputSpeed)
	return []mech.Series{s}, nil
}
