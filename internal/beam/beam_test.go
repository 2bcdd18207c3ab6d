package beam

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/mechcalc/internal/mech"
)

func steelBeam(t *testing.T) *Beam {
	t.Helper()
	inertia, err := RectangleInertia(0.05, 0.1)
	if err != nil {
		t.Fatalf("inertia failed: %v", err)
	}
	b, err := New(2.0, 210e9, inertia, 1000)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	return b
}

func TestDeflectionSupports(t *testing.T) {
	b := steelBeam(t)

	for _, x := range []float64{0, b.Length()} {
		d, err := b.Deflection(x)
		if err != nil {
			t.Fatalf("deflection failed: %v", err)
		}
		if math.Abs(d) > 1e-15 {
			t.Errorf("expected zero deflection at support x=%f, got %g", x, d)
		}
	}
}

func TestDeflectionMidspan(t *testing.T) {
	b := steelBeam(t)

	mid, err := b.Deflection(b.Length() / 2)
	if err != nil {
		t.Fatalf("deflection failed: %v", err)
	}
	if math.Abs(mid-b.MaxDeflection()) > 1e-15 {
		t.Errorf("expected midspan %g to equal max deflection %g", mid, b.MaxDeflection())
	}
	if math.Abs(b.MaxDeflection()-2.380952e-4) > 1e-9 {
		t.Errorf("expected 0.238 mm, got %g", b.MaxDeflection())
	}

	left, _ := b.Deflection(0.5)
	right, _ := b.Deflection(1.5)
	if math.Abs(left-right) > 1e-15 {
		t.Errorf("expected symmetric deflection, got %g and %g", left, right)
	}
}

func TestMaxStress(t *testing.T) {
	b := steelBeam(t)

	if b.MaxMoment() != 500 {
		t.Errorf("expected moment 500 N·m, got %f", b.MaxMoment())
	}

	sigma, err := b.MaxStress(0.1)
	if err != nil {
		t.Fatalf("stress failed: %v", err)
	}
	if math.Abs(sigma-6e6) > 1e-3 {
		t.Errorf("expected 6 MPa, got %f MPa", sigma/1e6)
	}
}

func TestValidation(t *testing.T) {
	b := steelBeam(t)

	if _, err := b.Deflection(-0.1); !errors.Is(err, mech.ErrInvalidArgument) {
		t.Errorf("expected invalid argument left of span, got %v", err)
	}
	if _, err := b.Deflection(2.1); !errors.Is(err, mech.ErrInvalidArgument) {
		t.Errorf("expected invalid argument right of span, got %v", err)
	}
	if _, err := New(0, 210e9, 1e-6, 1000); !errors.Is(err, mech.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for zero length, got %v", err)
	}
	if _, err := RectangleInertia(0.05, 0); !errors.Is(err, mech.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for zero height, got %v", err)
	}
	if _, err := b.Series(0); !errors.Is(err, mech.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for zero samples, got %v", err)
	}
}

func TestSeries(t *testing.T) {
	b := steelBeam(t)
	series, err := b.Series(101)
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}

	s := series[0]
	if s.Len() != 101 {
		t.Fatalf("expected 101 points, got %d", s.Len())
	}
	_, hi := s.Bounds()
	if math.Abs(hi-b.MaxDeflection()) > 1e-15 {
		t.Errorf("expected curve peak %g at midspan, got %g", b.MaxDeflection(), hi)
	}
}
