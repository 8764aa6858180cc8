// Package npv computes the net present value of an ordered cash-flow
// series, plus the analytic derivative of NPV with respect to the
// discount rate.
//
// Overview:
//
//   - A cash-flow series is a []float64 indexed by period t = 0, 1, 2, …
//     with money received positive and money paid negative. Periods are
//     equally spaced; index 0 is conventionally the initial outlay.
//   - Evaluate sums each flow discounted by (1+rate)^t:
//
//     NPV(r) = Σ_{t=0}^{n-1} flows[t] / (1+r)^t
//
//     There is no special case for t = 0: the first term reduces to
//     flows[0] because any base to the 0th power is 1.
//   - Derivative returns dNPV/dr for the same series:
//
//     dNPV/dr = Σ_{t=0}^{n-1} (−t) · flows[t] / (1+r)^(t+1)
//
//     NPV is generally decreasing in the rate for a conventional series
//     (one outflow followed by inflows), so the derivative is the slope a
//     Newton-style root find needs.
//
// When to use:
//
//   - Appraising an investment at a known discount rate.
//   - As the objective function (and slope) for rate root finds — see
//     irr.Solve, which drives both quantities in a single pass.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidRate: rate ≤ −1 (−100%), which would make the discounting
//     base (1+rate) non-positive. On failure the returned value is NaN —
//     not 0, since 0 is a legitimate NPV.
//
// Edge cases:
//
//   - An empty series is not an error: the sum over zero terms is 0.
//
// Thread safety:
//
//   - Pure functions; the input slice is never mutated. Safe for
//     unrestricted concurrent use.
//
// Complexity: O(n) time, O(1) space for both functions.
package npv
