package response

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-cheby/dsp/filter/biquad"
	"github.com/cwbudde/algo-cheby/dsp/filter/lti"
)

// SOSFreqz evaluates the cascade response on n frequencies in [0, pi)
// rad/sample (512 unless WithPoints says otherwise).
func SOSFreqz(sections []biquad.Coefficients, opts ...Option) (FrequencyResponse, error) {
	cfg := applyOptions(DefaultDigitalPoints, opts)
	w := DigitalGrid(cfg.points)

	values := make([]complex128, len(w))

	for i, omega := range w {
		h := complex(1, 0)
		for j := range sections {
			h *= sections[j].ResponseAt(omega)
		}

		if cmplx.IsNaN(h) || cmplx.IsInf(h) {
			return FrequencyResponse{}, &DegenerateFilterError{Frequency: omega}
		}

		values[i] = h
	}

	return FrequencyResponse{Frequencies: w, Values: values}, nil
}

// SOSGroupDelay returns the cascade group delay on n frequencies in [0, pi)
// rad/sample (512 unless WithPoints says otherwise). Each section
// contributes its closed-form delay; a pole on the unit circle at a grid
// frequency fails with a *DegenerateFilterError.
func SOSGroupDelay(sections []biquad.Coefficients, opts ...Option) (GroupDelay, error) {
	cfg := applyOptions(DefaultDigitalPoints, opts)
	w := DigitalGrid(cfg.points)

	delays := make([]float64, len(w))

	for i, omega := range w {
		total := 0.0

		for j := range sections {
			d, ok := sections[j].GroupDelay(omega)
			if !ok {
				return GroupDelay{}, &DegenerateFilterError{Frequency: omega}
			}

			total += d
		}

		delays[i] = total
	}

	return GroupDelay{Frequencies: w, Delays: delays}, nil
}

// TFGroupDelay returns the group delay of the digital system
// B(z^-1)/A(z^-1) on n frequencies in [0, pi) rad/sample.
//
// With c = b convolved with reversed a, the delay is
// Re(sum(k*c[k]*z^k) / sum(c[k]*z^k)) - (len(a)-1), z = e^(-jw).
// Frequencies where the second sum vanishes fail with a
// *DegenerateFilterError.
func TFGroupDelay(tf lti.TransferFunction, opts ...Option) (GroupDelay, error) {
	if len(tf.Num) == 0 || len(tf.Den) == 0 {
		return GroupDelay{}, fmt.Errorf("%w: empty polynomial", ErrDegenerateFilter)
	}

	cfg := applyOptions(DefaultDigitalPoints, opts)
	w := DigitalGrid(cfg.points)

	c := convolve(tf.Num, reversed(tf.Den))
	offset := float64(len(tf.Den) - 1)

	delays := make([]float64, len(w))

	for i, omega := range w {
		z := cmplx.Exp(complex(0, -omega))

		var num, den complex128

		zk := complex(1, 0)
		for k, ck := range c {
			den += complex(ck, 0) * zk
			num += complex(float64(k)*ck, 0) * zk
			zk *= z
		}

		if den == 0 {
			return GroupDelay{}, &DegenerateFilterError{Frequency: omega}
		}

		d := real(num/den) - offset
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return GroupDelay{}, &DegenerateFilterError{Frequency: omega}
		}

		delays[i] = d
	}

	return GroupDelay{Frequencies: w, Delays: delays}, nil
}

func convolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}

	return out
}

func reversed(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}

	return out
}
