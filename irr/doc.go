// Package irr finds the internal rate of return of a cash-flow series:
// the discount rate at which the series' net present value crosses zero.
//
// Overview:
//
//   - The IRR of flows (indexed by period t = 0, 1, 2, …) is a root of
//
//     NPV(r) = Σ flows[t] / (1+r)^t = 0
//
//   - Solve refines a caller-supplied guess with Newton-Raphson iteration,
//     using the analytic derivative of NPV as the slope:
//
//     r ← r − NPV(r) / NPV'(r)
//
//     Both quantities are accumulated in a single pass over the series per
//     iteration, reusing each (1+r)^t power term between them.
//
// When to use:
//
//   - Recovering the implied per-period return of an investment given its
//     outlay and subsequent inflows.
//   - Comparing projects by yield rather than by NPV at a fixed hurdle.
//
// Options:
//
//   - WithGuess(g):         starting rate estimate (default 0.1).
//   - WithTolerance(tol):   convergence threshold on |NPV| (default 1e-6).
//   - WithMaxIterations(n): iteration cap (default 1000).
//
// Errors (sentinel):
//
//   - ErrEmptySeries:          the series has no flows.
//   - ErrNoSignChange:         the series lacks a strictly negative or a
//     strictly positive flow; a rate of return is undefined when all money
//     moves in one direction.
//   - ErrDegenerateBase:       an iterate landed on exactly −1, where the
//     discounting base (1+r) collapses to zero.
//   - ErrStationaryDerivative: NPV'(r) is exactly zero, so the Newton step
//     is undefined.
//   - ErrNoConvergence:        |NPV| never fell below the tolerance within
//     the iteration cap (wrapped with the cap used; match via errors.Is).
//   - ErrBadTolerance / ErrBadMaxIterations: panics raised by the option
//     constructors on non-positive values.
//
// Every failure returns NaN as the value — never a partial estimate — and
// every failure is terminal: there is no retry with a perturbed guess and
// no fallback to bisection.
//
// Known limitation (by construction, not mitigated):
//
//   - Newton-Raphson converges quadratically near a root, but a series
//     with several sign changes has several real roots, and which one is
//     found — or whether the iteration diverges — depends on the guess.
//
// Example usage:
//
//	rate, err := irr.Solve(
//	    []float64{-1000, 300, 400, 500, 600},
//	    irr.WithGuess(0.05),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("IRR: %.2f%%\n", rate*100)
//
// Thread safety:
//
//   - Solve is pure and never mutates the input slice; safe for
//     unrestricted concurrent use.
//
// Complexity: O(n · iterations) time, O(1) space.
package irr
