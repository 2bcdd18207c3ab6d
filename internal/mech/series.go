package mech

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series is a single curve: Y sampled at X.
type Series struct {
	Name   string
	XLabel string
	YLabel string
	X      []float64
	Y      []float64
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.X)
}

// Bounds returns the min and max of Y. An empty series reports 0, 0.
func (s Series) Bounds() (lo, hi float64) {
	if len(s.Y) == 0 {
		return 0, 0
	}
	return floats.Min(s.Y), floats.Max(s.Y)
}

// Span returns n evenly spaced values over [lo, hi], endpoints included.
// A single sample sits at lo.
func Span(n int, lo, hi float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// SafeSqrt returns sqrt(max(0, x)). Rounding can push radicands that are
// zero in exact arithmetic slightly below it.
func SafeSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// Map builds a series by evaluating f over xs.
func Map(name, xLabel, yLabel string, xs []float64, f func(float64) float64) Series {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return Series{Name: name, XLabel: xLabel, YLabel: yLabel, X: xs, Y: ys}
}
