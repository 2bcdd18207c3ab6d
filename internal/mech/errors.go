package mech

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument indicates a caller supplied a parameter outside its
// physically meaningful range. It is never retried.
var ErrInvalidArgument = errors.New("mech: invalid argument")

// ParamError wraps ErrInvalidArgument with the offending parameter.
type ParamError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %s", ErrInvalidArgument, e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidArgument
}

// Invalid builds a *ParamError.
func Invalid(param string, value float64, reason string) error {
	return &ParamError{Param: param, Value: value, Reason: reason}
}

// RequireFinite rejects NaN and ±Inf.
func RequireFinite(param string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Invalid(param, value, "must be finite")
	}
	return nil
}

// RequirePositive rejects non-finite values and values <= 0.
func RequirePositive(param string, value float64) error {
	if err := RequireFinite(param, value); err != nil {
		return err
	}
	if value <= 0 {
		return Invalid(param, value, "must be positive")
	}
	return nil
}

// RequireSamples rejects sample counts below one.
func RequireSamples(n int) error {
	if n <= 0 {
		return Invalid("samples", float64(n), "must be at least 1")
	}
	return nil
}
