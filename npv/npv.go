package npv

import (
	"errors"
	"math"
)

// ErrInvalidRate indicates a discount rate ≤ −1 (−100%), for which the
// discounting base (1+rate) is non-positive and the power terms are
// undefined or divide by zero.
var ErrInvalidRate = errors.New("npv: rate must be greater than -1")

// Evaluate returns the net present value of flows at the given per-period
// discount rate:
//
//	NPV = Σ flows[t] / (1+rate)^t   for t = 0 … len(flows)-1
//
// Validation:
//  1. rate must be > −1 (ErrInvalidRate); the returned value is then NaN,
//     never a clamped or partial sum.
//
// An empty series yields 0 with a nil error. The input slice is read-only.
//
// Complexity: O(n) time, O(1) space.
func Evaluate(rate float64, flows []float64) (float64, error) {
	if rate <= -1 {
		return math.NaN(), ErrInvalidRate
	}

	var sum float64
	for t, flow := range flows {
		sum += flow / math.Pow(1+rate, float64(t))
	}

	return sum, nil
}

// Derivative returns dNPV/drate of flows at the given per-period discount
// rate:
//
//	dNPV/dr = Σ (−t) · flows[t] / (1+rate)^(t+1)   for t = 0 … len(flows)-1
//
// The t = 0 term contributes nothing (the undiscounted flow is constant in
// the rate). Validation and edge cases match Evaluate: rate ≤ −1 yields
// (NaN, ErrInvalidRate), an empty series yields (0, nil).
//
// Complexity: O(n) time, O(1) space.
func Derivative(rate float64, flows []float64) (float64, error) {
	if rate <= -1 {
		return math.NaN(), ErrInvalidRate
	}

	var sum float64
	for t, flow := range flows {
		sum -= float64(t) * flow / math.Pow(1+rate, float64(t+1))
	}

	return sum, nil
}
