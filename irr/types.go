// Package irr defines configuration options and sentinel errors for the
// Newton-Raphson internal-rate-of-return solver.
package irr

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrEmptySeries indicates that the cash-flow series has no elements.
	ErrEmptySeries = errors.New("irr: cash-flow series is empty")

	// ErrNoSignChange indicates that the series lacks at least one strictly
	// negative and one strictly positive flow. NPV then never crosses zero,
	// so no rate of return exists.
	ErrNoSignChange = errors.New("irr: series needs at least one negative and one positive flow")

	// ErrDegenerateBase indicates that the current rate estimate is exactly
	// −1, collapsing the discounting base (1+r) to zero. Continuing would
	// divide by zero; try a different guess.
	ErrDegenerateBase = errors.New("irr: rate estimate reached -1, discounting base is zero")

	// ErrStationaryDerivative indicates that dNPV/dr is exactly zero at the
	// current estimate, leaving the Newton step undefined.
	ErrStationaryDerivative = errors.New("irr: derivative is zero, Newton step undefined")

	// ErrNoConvergence indicates that |NPV| never fell below the tolerance
	// within the configured iteration cap. Solve wraps it with the cap used;
	// match it via errors.Is.
	ErrNoConvergence = errors.New("irr: did not converge")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("irr: tolerance must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("irr: max iterations must be positive")
)

// Default solver parameters, used when the corresponding option is not set.
const (
	// DefaultGuess is the starting rate estimate (10%).
	DefaultGuess = 0.1

	// DefaultTolerance is the convergence threshold on |NPV|.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds the Newton-Raphson loop, guaranteeing
	// termination even when the iteration oscillates or diverges.
	DefaultMaxIterations = 1000
)

// Options configures a single Solve call.
//
// Guess         – starting rate estimate for the iteration.
// Tolerance     – convergence threshold: stop once |NPV| < Tolerance.
//
//	Must be > 0. Default is DefaultTolerance.
//
// MaxIterations – hard cap on Newton-Raphson steps.
//
//	Must be > 0. Default is DefaultMaxIterations.
type Options struct {
	Guess         float64 // Starting rate estimate
	Tolerance     float64 // Convergence threshold on |NPV|
	MaxIterations int     // Hard cap on iterations
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithGuess sets the starting rate estimate. Any real value is accepted;
// a guess of exactly −1 fails on the first iteration with ErrDegenerateBase
// rather than panicking here, since later iterates can land on −1 too.
func WithGuess(guess float64) Option {
	return func(o *Options) {
		o.Guess = guess
	}
}

// WithTolerance sets the convergence threshold on |NPV|.
// Must pass a positive value; zero or negative cause a panic with
// ErrBadTolerance.
func WithTolerance(tolerance float64) Option {
	return func(o *Options) {
		if tolerance <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tolerance
	}
}

// WithMaxIterations caps the number of Newton-Raphson steps.
// Must pass a positive value; zero or negative cause a panic with
// ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Guess:         DefaultGuess (0.1).
//   - Tolerance:     DefaultTolerance (1e-6).
//   - MaxIterations: DefaultMaxIterations (1000).
func DefaultOptions() Options {
	return Options{
		Guess:         DefaultGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}
