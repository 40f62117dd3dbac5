package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cheby/dsp/core"
)

// ErrDegenerateFilter reports a response or delay that is unbounded at an
// evaluated frequency, typically because a denominator vanishes there.
var ErrDegenerateFilter = errors.New("response: degenerate filter")

// DegenerateFilterError names the frequency where evaluation failed. It
// matches ErrDegenerateFilter under errors.Is.
type DegenerateFilterError struct {
	// Frequency is in the unit of the grid being evaluated: rad/s for
	// analog responses, rad/sample for digital ones.
	Frequency float64
}

func (e *DegenerateFilterError) Error() string {
	return fmt.Sprintf("%v at frequency %g", ErrDegenerateFilter, e.Frequency)
}

func (e *DegenerateFilterError) Unwrap() error {
	return ErrDegenerateFilter
}

// FrequencyResponse holds complex response values on a frequency grid.
type FrequencyResponse struct {
	Frequencies []float64
	Values      []complex128
}

// Len returns the number of grid points.
func (r FrequencyResponse) Len() int {
	return len(r.Values)
}

// Magnitude returns |H| per grid point.
func (r FrequencyResponse) Magnitude() []float64 {
	re := make([]float64, len(r.Values))
	im := make([]float64, len(r.Values))

	for i, h := range r.Values {
		re[i] = real(h)
		im[i] = imag(h)
	}

	mag := make([]float64, len(r.Values))
	vecmath.Magnitude(mag, re, im)

	return mag
}

// MagnitudeDB returns 20*log10|H| per grid point; exact nulls give -Inf.
func (r FrequencyResponse) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}

	return mag
}

// Phase returns the unwrapped phase in radians.
func (r FrequencyResponse) Phase() []float64 {
	phase := make([]float64, len(r.Values))
	for i, h := range r.Values {
		phase[i] = cmplx.Phase(h)
	}

	return unwrap(phase)
}

// unwrap removes 2*pi jumps between consecutive samples.
func unwrap(p []float64) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}

	out[0] = p[0]
	correction := 0.0

	for i := 1; i < len(p); i++ {
		d := p[i] - p[i-1]

		dd := math.Mod(d+math.Pi, 2*math.Pi)
		if dd < 0 {
			dd += 2 * math.Pi
		}

		dd -= math.Pi
		if dd == -math.Pi && d > 0 {
			dd = math.Pi
		}

		if math.Abs(d) >= math.Pi {
			correction += dd - d
		}

		out[i] = p[i] + correction
	}

	return out
}

// GroupDelay holds delays in samples on a digital frequency grid.
type GroupDelay struct {
	// Frequencies in rad/sample, within [0, pi).
	Frequencies []float64
	// Delays in samples.
	Delays []float64
}

// Hz converts the frequency axis to Hz for the given sample rate.
func (g GroupDelay) Hz(sampleRate float64) []float64 {
	out := make([]float64, len(g.Frequencies))
	for i, w := range g.Frequencies {
		out[i] = w * sampleRate / (2 * math.Pi)
	}

	return out
}

// Seconds converts the delays to seconds for the given sample rate.
func (g GroupDelay) Seconds(sampleRate float64) []float64 {
	out := make([]float64, len(g.Delays))
	vecmath.ScaleBlock(out, g.Delays, 1/sampleRate)

	return out
}
