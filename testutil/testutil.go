// Package testutil provides the tolerance-based floating point comparisons used by the
// nudgenet test suites.
package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	absTol = 1e-12
	relTol = 1e-9
)

// FloatEq reports whether a and b are equal within a small absolute-or-relative tolerance.
// Unlike ==, two NaNs compare equal, so tests can assert NaN propagation.
func FloatEq(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return scalar.EqualWithinAbsOrRel(a, b, absTol, relTol)
}

// FloatsEq reports whether two slices are elementwise equal by FloatEq. Slices of different
// lengths are never equal.
func FloatsEq(a, b []float64) bool {
	return floats.EqualFunc(a, b, FloatEq)
}

// AssertFloatEq fails the test if got is not FloatEq to want.
func AssertFloatEq(t *testing.T, got, want float64, what string) {
	t.Helper()

	if !FloatEq(got, want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// AssertFloatsEq fails the test if got is not elementwise FloatEq to want.
func AssertFloatsEq(t *testing.T, got, want []float64, what string) {
	t.Helper()

	if !FloatsEq(got, want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}
