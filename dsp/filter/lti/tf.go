package lti

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-cheby/internal/polyroot"
)

// TransferFunction is a rational system b(x)/a(x) with coefficients in
// descending powers of x (s for analog, z for digital).
type TransferFunction struct {
	Num []float64
	Den []float64
}

// Eval returns Num(x)/Den(x).
func (tf TransferFunction) Eval(x complex128) complex128 {
	return polyroot.PolyEvalReal(tf.Num, x) / polyroot.PolyEvalReal(tf.Den, x)
}

// Order returns the denominator degree.
func (tf TransferFunction) Order() int {
	return max(len(tf.Den)-1, 0)
}

// Clone returns a deep copy of tf.
func (tf TransferFunction) Clone() TransferFunction {
	return TransferFunction{Num: slices.Clone(tf.Num), Den: slices.Clone(tf.Den)}
}

// ZPK factors tf into zero-pole-gain form. The gain is the ratio of the
// leading non-zero coefficients.
func (tf TransferFunction) ZPK() (ZPK, error) {
	num := trimLeadingZeros(tf.Num)
	den := trimLeadingZeros(tf.Den)

	if len(num) == 0 || len(den) == 0 {
		return ZPK{}, fmt.Errorf("%w: empty or all-zero polynomial", ErrInvalidTransform)
	}

	zeros, err := polyroot.Roots(num)
	if err != nil {
		return ZPK{}, fmt.Errorf("lti: numerator roots: %w", err)
	}

	poles, err := polyroot.Roots(den)
	if err != nil {
		return ZPK{}, fmt.Errorf("lti: denominator roots: %w", err)
	}

	return ZPK{Zeros: zeros, Poles: poles, Gain: num[0] / den[0]}, nil
}

func trimLeadingZeros(c []float64) []float64 {
	for len(c) > 0 && c[0] == 0 {
		c = c[1:]
	}

	return c
}
