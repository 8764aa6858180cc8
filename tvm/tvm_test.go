package tvm_test

import (
	"testing"

	"github.com/katalvlaran/fincalc/tvm"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-2 // two-decimal tolerance for currency amounts

// TestFutureValue_Known verifies the textbook case
// FV(1000, 5%, 10 periods) ≈ 1628.89.
func TestFutureValue_Known(t *testing.T) {
	fv, err := tvm.FutureValue(1000, 0.05, 10)
	assert.NoError(t, err, "valid inputs should not error")
	assert.InDelta(t, 1628.89, fv, delta, "FV of 1000 at 5% over 10 periods")
}

// TestFutureValue_ZeroPeriods verifies that zero periods returns the input
// unchanged: any base to the 0th power is 1.
func TestFutureValue_ZeroPeriods(t *testing.T) {
	fv, err := tvm.FutureValue(1234.56, 0.07, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1234.56, fv, "zero periods must be identity")
}

// TestFutureValue_NegativePeriods verifies the 0-value sentinel and
// ErrNegativePeriods for a negative period count.
func TestFutureValue_NegativePeriods(t *testing.T) {
	fv, err := tvm.FutureValue(1000, 0.05, -1)
	assert.ErrorIs(t, err, tvm.ErrNegativePeriods, "negative periods must error")
	assert.Zero(t, fv, "failure must return the 0 sentinel")
}

// TestPresentValue_Known verifies PV(2000, 8%, 5 periods) ≈ 1361.17.
func TestPresentValue_Known(t *testing.T) {
	pv, err := tvm.PresentValue(2000, 0.08, 5)
	assert.NoError(t, err)
	assert.InDelta(t, 1361.17, pv, delta, "PV of 2000 at 8% over 5 periods")
}

// TestPresentValue_InvalidRate verifies that rate ≤ −1 errors with
// ErrInvalidRate rather than dividing by zero.
func TestPresentValue_InvalidRate(t *testing.T) {
	pv, err := tvm.PresentValue(2000, -1, 5)
	assert.ErrorIs(t, err, tvm.ErrInvalidRate, "rate of exactly -1 must error")
	assert.Zero(t, pv)

	pv, err = tvm.PresentValue(2000, -1.5, 5)
	assert.ErrorIs(t, err, tvm.ErrInvalidRate, "rate below -1 must error")
	assert.Zero(t, pv)
}

// TestPresentValue_NegativePeriods verifies the period check fires before
// the rate check, matching the documented validation order.
func TestPresentValue_NegativePeriods(t *testing.T) {
	_, err := tvm.PresentValue(2000, -2, -3)
	assert.ErrorIs(t, err, tvm.ErrNegativePeriods, "periods are validated first")
}

// TestFutureValuePresentValue_RoundTrip verifies that discounting a grown
// amount recovers the original within floating-point tolerance, across a
// spread of rates and period counts.
func TestFutureValuePresentValue_RoundTrip(t *testing.T) {
	cases := []struct {
		pv      float64
		rate    float64
		periods int
	}{
		{1000, 0.05, 10},
		{250.75, 0.12, 3},
		{9999.99, -0.5, 7},
		{1, 0.0001, 100},
		{0, 0.08, 5},
	}
	for _, tc := range cases {
		grown, err := tvm.FutureValue(tc.pv, tc.rate, tc.periods)
		assert.NoError(t, err)
		back, err := tvm.PresentValue(grown, tc.rate, tc.periods)
		assert.NoError(t, err)
		assert.InDelta(t, tc.pv, back, 1e-9, "FV→PV must round-trip for pv=%v rate=%v n=%d", tc.pv, tc.rate, tc.periods)
	}
}

// TestSimpleInterest_Known verifies I = P·r·t on 5000 at 6% for 3 years.
func TestSimpleInterest_Known(t *testing.T) {
	interest, err := tvm.SimpleInterest(5000, 0.06, 3)
	assert.NoError(t, err)
	assert.InDelta(t, 900.0, interest, delta, "simple interest on 5000 at 6% over 3y")
}

// TestSimpleInterest_NegativeArgs verifies each negative argument trips
// ErrNegativeInput with the 0 sentinel.
func TestSimpleInterest_NegativeArgs(t *testing.T) {
	for _, args := range [][3]float64{
		{-5000, 0.06, 3},
		{5000, -0.06, 3},
		{5000, 0.06, -3},
	} {
		interest, err := tvm.SimpleInterest(args[0], args[1], args[2])
		assert.ErrorIs(t, err, tvm.ErrNegativeInput, "args=%v", args)
		assert.Zero(t, interest)
	}
}

// TestCompoundInterest_Known verifies the monthly-compounding case
// A(1000, 7%, 12×/year, 5y) ≈ 1417.63.
func TestCompoundInterest_Known(t *testing.T) {
	amount, err := tvm.CompoundInterest(1000, 0.07, 12, 5)
	assert.NoError(t, err)
	assert.InDelta(t, 1417.63, amount, delta, "1000 at 7% compounded monthly over 5y")
}

// TestCompoundInterest_AnnualMatchesFutureValue verifies that annual
// compounding over whole years agrees with FutureValue.
func TestCompoundInterest_AnnualMatchesFutureValue(t *testing.T) {
	amount, err := tvm.CompoundInterest(1000, 0.05, 1, 10)
	assert.NoError(t, err)
	fv, err2 := tvm.FutureValue(1000, 0.05, 10)
	assert.NoError(t, err2)
	assert.InDelta(t, fv, amount, 1e-9, "annual compounding must equal FV")
}

// TestCompoundInterest_BadFrequency verifies frequency < 1 errors with
// ErrBadFrequency after the non-negativity checks.
func TestCompoundInterest_BadFrequency(t *testing.T) {
	amount, err := tvm.CompoundInterest(1000, 0.07, 0, 5)
	assert.ErrorIs(t, err, tvm.ErrBadFrequency)
	assert.Zero(t, amount)

	_, err = tvm.CompoundInterest(-1, 0.07, 0, 5)
	assert.ErrorIs(t, err, tvm.ErrNegativeInput, "non-negativity is validated before frequency")
}
