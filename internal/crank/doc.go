// Package crank models the kinematics of an idealized slider-crank
// (piston, connecting rod, crank) mechanism turning at constant angular
// velocity.
//
// Displacement is measured from the crank centre along the line of stroke,
// so the piston sits at r+L at θ = 0 (outer dead centre) and at L−r at θ = π
// (inner dead centre). Velocity and acceleration are exact time derivatives
// of that displacement.
//
// The package computes only; rendering lives in viz and export, which consume
// the output of [Series].
package crank
