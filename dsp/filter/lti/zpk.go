package lti

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-cheby/internal/polyroot"
)

// ErrInvalidTransform reports a transform that cannot be applied: a
// non-positive frequency, bandwidth or sample rate, more zeros than poles,
// or a pole mapped onto a singularity.
var ErrInvalidTransform = errors.New("lti: invalid transform")

// ZPK is a system in zero-pole-gain form:
//
//	H(s) = Gain * prod(s - Zeros[i]) / prod(s - Poles[i])
//
// Zeros and poles must be closed under conjugation so the expanded
// polynomials are real.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Clone returns a deep copy of z.
func (z ZPK) Clone() ZPK {
	return ZPK{
		Zeros: slices.Clone(z.Zeros),
		Poles: slices.Clone(z.Poles),
		Gain:  z.Gain,
	}
}

// RelativeDegree returns len(Poles) - len(Zeros).
func (z ZPK) RelativeDegree() int {
	return len(z.Poles) - len(z.Zeros)
}

// Eval returns H at the complex point x (s for analog, z for digital).
func (z ZPK) Eval(x complex128) complex128 {
	h := complex(z.Gain, 0)
	for _, q := range z.Zeros {
		h *= x - q
	}

	for _, p := range z.Poles {
		h /= x - p
	}

	return h
}

// TransferFunction expands z into numerator and denominator polynomials in
// descending powers.
func (z ZPK) TransferFunction() TransferFunction {
	num := polyroot.RealPoly(z.Zeros)
	for i := range num {
		num[i] *= z.Gain
	}

	return TransferFunction{
		Num: num,
		Den: polyroot.RealPoly(z.Poles),
	}
}

// Prewarp maps a frequency in Hz to the analog angular frequency that the
// bilinear transform at sampleRate sends back to freqHz.
func Prewarp(freqHz, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freqHz/sampleRate)
}

// prodNeg returns prod(-r).
func prodNeg(roots []complex128) complex128 {
	p := complex(1, 0)
	for _, r := range roots {
		p *= -r
	}

	return p
}

// isRealRoot applies the same tolerance used when splitting conjugate sets.
func isRealRoot(x complex128) bool {
	return math.Abs(imag(x)) <= realTol*cmplx.Abs(x)
}

// realTol is 100 machine epsilons.
const realTol = 100 * 2.220446049250313e-16
