// Package tvm provides the closed-form time-value-of-money formulas:
// future value, present value, simple interest and compound interest.
//
// Overview:
//
//   - Every function is a pure closed-form expression over its arguments —
//     no iteration, no state, no I/O. Rates are fractions (0.05 means 5%),
//     periods are whole compounding intervals, time is measured in years.
//   - FutureValue grows a present amount forward:  FV = PV · (1+r)^n.
//   - PresentValue discounts a future amount back: PV = FV / (1+r)^n.
//   - SimpleInterest returns the interest portion only: I = P · r · t.
//   - CompoundInterest returns the total accumulated amount (principal plus
//     interest): A = P · (1 + r/m)^(m·t), where m is the compounding
//     frequency per year.
//
// When to use:
//
//   - Single-amount growth or discounting where the rate is known.
//   - As collaborators around npv/ and irr/ when working with whole
//     cash-flow series instead of single amounts.
//
// Error handling (sentinel errors):
//
//   - ErrNegativePeriods: the period count is negative.
//   - ErrInvalidRate:     a discount rate is ≤ −1 (−100%), which would make
//     the discounting base (1+r) non-positive.
//   - ErrNegativeInput:   a principal, rate or time argument that must be
//     non-negative is negative.
//   - ErrBadFrequency:    the compounding frequency is < 1.
//
// On any failure the returned value is 0 alongside the error, so call sites
// that only look at the value observe a harmless zero rather than garbage.
//
// Thread safety:
//
//   - All functions are pure; safe for unrestricted concurrent use.
//
// See also:
//
//   - npv.Evaluate for discounting a whole series of cash flows.
//   - irr.Solve for recovering the rate implied by a series.
package tvm
