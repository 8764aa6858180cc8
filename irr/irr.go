// Package irr implements Newton-Raphson root finding on the NPV function.
//
// Each iteration evaluates NPV and its analytic derivative in one pass over
// the series, then steps the rate estimate by −NPV/NPV'. Convergence is
// judged on |NPV| alone, so a returned rate is always one at which the
// series' NPV is below the configured tolerance.
//
// Notes on implementation choices:
//
//   - We pre-scan the series once (O(n)) to confirm a sign change and fail
//     fast with ErrNoSignChange before iterating.
//   - Each (1+r)^t power term is computed once per flow per iteration and
//     reused for the derivative via one extra division.
//   - Every failure path returns NaN, never the last estimate: a caller
//     who ignores the error cannot mistake a diverged iterate for a rate.
package irr

import (
	"fmt"
	"math"
)

// Solve returns the internal rate of return of flows: a rate r with
// |NPV(r)| below the configured tolerance, found by Newton-Raphson
// iteration from the configured guess. It accepts functional options to
// customize behavior (WithGuess, WithTolerance, WithMaxIterations).
//
// Returns:
//
//   - rate: the converged estimate, or NaN on any failure.
//   - err:  nil on convergence, otherwise one of the sentinel errors
//     (ErrEmptySeries, ErrNoSignChange, ErrDegenerateBase,
//     ErrStationaryDerivative, ErrNoConvergence).
//
// Preconditions and validation (in order):
//  1. flows must be non-empty (ErrEmptySeries).
//  2. flows must contain at least one strictly negative and one strictly
//     positive value (ErrNoSignChange).
//
// The input slice is read-only and never retained.
//
// Complexity:
//
//   - Time:  O(n · iterations), n = len(flows)
//   - Space: O(1)
func Solve(flows []float64, opts ...Option) (float64, error) {
	// 1) Build the configuration from defaults plus functional options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the series is non-empty.
	if len(flows) == 0 {
		return math.NaN(), ErrEmptySeries
	}

	// 3) Validate the series changes sign. A single O(n) scan: money must
	//    flow both out and in for NPV to have a root at all.
	var hasNegative, hasPositive bool
	for _, flow := range flows {
		if flow < 0 {
			hasNegative = true
		}
		if flow > 0 {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		return math.NaN(), ErrNoSignChange
	}

	// 4) Run the Newton-Raphson loop from the configured guess.
	s := &solver{flows: flows, options: cfg, rate: cfg.Guess}

	return s.run()
}

// solver holds the mutable state for a single Solve execution.
type solver struct {
	flows   []float64 // The input series; read-only within Solve.
	options Options   // Configuration (guess, tolerance, iteration cap).
	rate    float64   // Current rate estimate, updated each iteration.
}

// run drives the Newton-Raphson loop until the estimate converges, a
// terminal guard fires, or the iteration cap is exhausted.
//
// Loop body (per iteration):
//  1. Evaluate NPV and dNPV/dr at the current estimate in one pass.
//  2. If any power term is exactly zero (estimate == −1), fail with
//     ErrDegenerateBase before dividing.
//  3. If |NPV| < Tolerance, return the estimate — converged.
//  4. If the derivative is exactly zero, fail with ErrStationaryDerivative.
//  5. Step: rate ← rate − NPV/dNPV.
//
// All failures are terminal; there is no perturbed retry or bisection
// fallback.
func (s *solver) run() (float64, error) {
	var npv, derivative float64
	var err error
	for i := 0; i < s.options.MaxIterations; i++ {
		// 1) Single pass over the series for both value and slope.
		if npv, derivative, err = s.evaluate(); err != nil {
			return math.NaN(), err
		}

		// 2) Converged: NPV is within tolerance of zero.
		if math.Abs(npv) < s.options.Tolerance {
			return s.rate, nil
		}

		// 3) A zero slope leaves the Newton step undefined.
		if derivative == 0 {
			return math.NaN(), ErrStationaryDerivative
		}

		// 4) Newton-Raphson step toward the root.
		s.rate -= npv / derivative
	}

	// 5) Iteration cap exhausted without convergence.
	return math.NaN(), fmt.Errorf("%w within %d iterations", ErrNoConvergence, s.options.MaxIterations)
}

// evaluate accumulates NPV and its derivative at the current estimate in a
// single pass:
//
//	NPV     = Σ flows[t] / (1+r)^t
//	dNPV/dr = Σ (−t) · flows[t] / (1+r)^(t+1)
//
// The (1+r)^t term is computed once per flow and reused for the derivative
// ((1+r)^(t+1) is one more multiplication by the base). If the base or any
// power term is exactly zero — the estimate sits on −1, or the powers have
// underflowed — it returns ErrDegenerateBase rather than dividing by zero.
func (s *solver) evaluate() (npv, derivative float64, err error) {
	base := 1 + s.rate
	if base == 0 {
		return 0, 0, ErrDegenerateBase
	}

	var power float64
	for t, flow := range s.flows {
		power = math.Pow(base, float64(t))
		if power == 0 {
			return 0, 0, ErrDegenerateBase
		}
		npv += flow / power
		derivative -= float64(t) * flow / (power * base)
	}

	return npv, derivative, nil
}
