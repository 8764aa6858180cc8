// Package tvm defines sentinel errors for the closed-form
// time-value-of-money formulas.
package tvm

import "errors"

// ErrNegativePeriods indicates that a period count was negative.
// Growth and discounting are defined only over n ≥ 0 periods.
var ErrNegativePeriods = errors.New("tvm: number of periods must be non-negative")

// ErrInvalidRate indicates a discount rate ≤ −1 (−100%).
// Such a rate makes the base (1+r) non-positive, so (1+r)^n is undefined
// or divides by zero.
var ErrInvalidRate = errors.New("tvm: rate must be greater than -1")

// ErrNegativeInput indicates that a principal, rate or time argument that
// must be non-negative was negative.
var ErrNegativeInput = errors.New("tvm: principal, rate and time must be non-negative")

// ErrBadFrequency indicates a compounding frequency below one per year.
var ErrBadFrequency = errors.New("tvm: compounding frequency must be at least 1")
