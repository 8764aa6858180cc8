// Package fincalc is a compact toolbox of time-value-of-money calculations —
// from one-line closed forms to an iterative internal-rate-of-return solver.
//
// 🚀 What is fincalc?
//
//	A small, dependency-light library that brings together:
//		• Closed forms: future value, present value, simple & compound interest
//		• Cash-flow analysis: net present value and its analytic derivative
//		• Root finding: internal rate of return via Newton-Raphson iteration
//
// ✨ Why choose fincalc?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest failures – every invalid input maps to a distinct sentinel error
//   - Pure Go – no cgo, no hidden deps, no global state
//   - Concurrency-safe – every function is pure; call from any goroutine
//
// Everything is organized under three subpackages:
//
//	tvm/ — single-amount closed forms: FutureValue, PresentValue,
//	       SimpleInterest, CompoundInterest
//	npv/ — net present value of an ordered cash-flow series, plus the
//	       analytic derivative of NPV with respect to the discount rate
//	irr/ — Newton-Raphson solver for the discount rate at which NPV
//	       crosses zero, with configurable guess, tolerance and iteration cap
//
// Quick example:
//
//	flows := []float64{-1000, 300, 400, 500, 600}
//	rate, err := irr.Solve(flows)           // ≈ 0.1467 (14.67%)
//	value, err := npv.Evaluate(0.10, flows) // NPV at a 10% discount rate
//
// Rates are fractions (0.10 means 10%), periods are equally spaced, and
// index 0 of a cash-flow series is the undiscounted initial flow.
//
//	go get github.com/katalvlaran/fincalc
package fincalc
