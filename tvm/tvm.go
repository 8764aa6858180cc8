package tvm

import "math"

// FutureValue returns the value that presentValue grows to after periods
// compounding intervals at the given per-period rate.
//
//	FV = PV · (1 + rate)^periods
//
// Validation:
//  1. periods must be ≥ 0 (ErrNegativePeriods).
//
// On failure the returned value is 0.
//
// Complexity: O(1).
func FutureValue(presentValue, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, ErrNegativePeriods
	}

	return presentValue * math.Pow(1+rate, float64(periods)), nil
}

// PresentValue returns the amount that, invested today at the given
// per-period rate, grows to futureValue after periods intervals.
//
//	PV = FV / (1 + rate)^periods
//
// Validation (in order):
//  1. periods must be ≥ 0 (ErrNegativePeriods).
//  2. rate must be > −1 (ErrInvalidRate) — otherwise the discounting base
//     (1+rate) is non-positive.
//
// On failure the returned value is 0.
//
// Complexity: O(1).
func PresentValue(futureValue, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, ErrNegativePeriods
	}
	if rate <= -1 {
		return 0, ErrInvalidRate
	}

	return futureValue / math.Pow(1+rate, float64(periods)), nil
}

// SimpleInterest returns the interest earned on principal at the given
// annual rate over years, without compounding.
//
//	I = P · rate · years
//
// Validation:
//  1. principal, rate and years must all be ≥ 0 (ErrNegativeInput).
//
// Note: the return value is the interest portion only, not principal plus
// interest. On failure the returned value is 0.
//
// Complexity: O(1).
func SimpleInterest(principal, rate, years float64) (float64, error) {
	if principal < 0 || rate < 0 || years < 0 {
		return 0, ErrNegativeInput
	}

	return principal * rate * years, nil
}

// CompoundInterest returns the total accumulated amount (principal plus
// interest) after compounding principal at the given annual rate,
// frequency times per year, over years.
//
//	A = P · (1 + rate/frequency)^(frequency · years)
//
// Validation (in order):
//  1. principal, rate and years must all be ≥ 0 (ErrNegativeInput).
//  2. frequency must be ≥ 1 (ErrBadFrequency).
//
// On failure the returned value is 0.
//
// Complexity: O(1).
func CompoundInterest(principal, rate float64, frequency int, years float64) (float64, error) {
	if principal < 0 || rate < 0 || years < 0 {
		return 0, ErrNegativeInput
	}
	if frequency < 1 {
		return 0, ErrBadFrequency
	}

	m := float64(frequency)

	return principal * math.Pow(1+rate/m, m*years), nil
}
