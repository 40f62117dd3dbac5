package response

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-cheby/dsp/filter/lti"
	"github.com/cwbudde/algo-cheby/internal/polyroot"
)

const pi = math.Pi

// Freqs evaluates the analog response H(jw) = B(jw)/A(jw) at every w in
// rad/s using Horner's rule.
func Freqs(tf lti.TransferFunction, w []float64) (FrequencyResponse, error) {
	if len(tf.Den) == 0 {
		return FrequencyResponse{}, fmt.Errorf("%w: empty denominator", ErrDegenerateFilter)
	}

	values := make([]complex128, len(w))

	for i, omega := range w {
		s := complex(0, omega)

		den := polyroot.PolyEvalReal(tf.Den, s)
		if den == 0 {
			return FrequencyResponse{}, &DegenerateFilterError{Frequency: omega}
		}

		h := polyroot.PolyEvalReal(tf.Num, s) / den
		if cmplx.IsNaN(h) || cmplx.IsInf(h) {
			return FrequencyResponse{}, &DegenerateFilterError{Frequency: omega}
		}

		values[i] = h
	}

	freqs := make([]float64, len(w))
	copy(freqs, w)

	return FrequencyResponse{Frequencies: freqs, Values: values}, nil
}

// FindFrequencies picks n log-spaced frequencies (rad/s) that cover the
// interesting part of the response, finding the roots of tf first. See
// FindFrequenciesFromRoots for the rule.
func FindFrequencies(tf lti.TransferFunction, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("response: need at least one frequency, got %d", n)
	}

	poles, err := polyroot.Roots(tf.Den)
	if err != nil {
		return nil, fmt.Errorf("%w: denominator roots: %v", ErrDegenerateFilter, err)
	}

	var zeros []complex128
	if nonZero(tf.Num) {
		zeros, err = polyroot.Roots(tf.Num)
		if err != nil {
			return nil, fmt.Errorf("response: numerator roots: %w", err)
		}
	}

	return FindFrequenciesFromRoots(zeros, poles, n)
}

// FindFrequenciesFromRoots picks n log-spaced frequencies (rad/s) from a
// decade below the lowest pole or zero to half a decade above the highest.
// Zeros beyond 1e5 are ignored; a system without poles is treated as having
// one at -1000.
func FindFrequenciesFromRoots(zeros, poles []complex128, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("response: need at least one frequency, got %d", n)
	}

	if len(poles) == 0 {
		poles = []complex128{-1000}
	}

	var ez []complex128

	for _, p := range poles {
		if p = snapReal(p); imag(p) >= 0 {
			ez = append(ez, p)
		}
	}

	for _, z := range zeros {
		if z = snapReal(z); cmplx.Abs(z) < 1e5 && imag(z) >= 0 {
			ez = append(ez, z)
		}
	}

	hi := math.Inf(-1)
	lo := math.Inf(1)

	for _, r := range ez {
		re := real(r)
		if cmplx.Abs(r) < 1e-10 {
			// Roots at the origin count as 1 rad/s.
			re++
		}

		hi = math.Max(hi, 3*math.Abs(re)+1.5*imag(r))
		lo = math.Min(lo, math.Abs(re)+2*imag(r))
	}

	hiExp := math.RoundToEven(math.Log10(hi) + 0.5)
	loExp := math.RoundToEven(math.Log10(0.1*lo) - 0.5)

	if math.IsNaN(hiExp) || math.IsInf(hiExp, 0) || math.IsNaN(loExp) || math.IsInf(loExp, 0) {
		return nil, fmt.Errorf("%w: no usable frequency range", ErrDegenerateFilter)
	}

	w := make([]float64, n)
	if n == 1 {
		w[0] = math.Pow(10, loExp)
		return w, nil
	}

	return floats.LogSpan(w, math.Pow(10, loExp), math.Pow(10, hiExp)), nil
}

// AnalogResponse evaluates tf on a FindFrequencies grid (200 points unless
// WithPoints says otherwise). WithRoots skips the root finding when the
// caller already holds the zeros and poles of tf.
func AnalogResponse(tf lti.TransferFunction, opts ...Option) (FrequencyResponse, error) {
	cfg := applyOptions(DefaultAnalogPoints, opts)

	var (
		w   []float64
		err error
	)

	if cfg.haveRoots {
		w, err = FindFrequenciesFromRoots(cfg.zeros, cfg.poles, cfg.points)
	} else {
		w, err = FindFrequencies(tf, cfg.points)
	}

	if err != nil {
		return FrequencyResponse{}, err
	}

	return Freqs(tf, w)
}

// snapReal clears round-off imaginary parts left by the root finder.
func snapReal(r complex128) complex128 {
	if math.Abs(imag(r)) <= 1e-10*math.Max(1, cmplx.Abs(r)) {
		return complex(real(r), 0)
	}

	return r
}

func nonZero(c []float64) bool {
	for _, v := range c {
		if v != 0 {
			return true
		}
	}

	return false
}
