// Package mech provides the primitives shared by the mechcalc calculators.
//
// The calculators themselves live in sibling packages and only depend on
// this one:
//
//   - [ParamError]: input validation failure, matches [ErrInvalidArgument]
//   - [Series]: one plottable curve handed to rendering collaborators
//   - [Span]: evenly spaced sweep grids
//   - [SafeSqrt]: square root with the radicand clamped at zero
//
// # Example
//
//	m, err := crank.New(0.05, 0.2, 50)
//	if errors.Is(err, mech.ErrInvalidArgument) {
//	    // caller input problem
//	}
//	samples, _ := m.Samples(1000, crank.DefaultCycles)
//	viz.Plot(os.Stdout, crank.Series(samples), viz.DefaultPlotOptions())
//
// # Thread Safety
//
// Every calculator value is immutable after construction and may be shared
// between goroutines without synchronization.
package mech
