package tone

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/cwbudde/algo-cheby/dsp/core"
)

// ErrInvalidInput is returned for empty signals, non-positive sample rates
// and frequencies outside (0, Nyquist).
var ErrInvalidInput = errors.New("tone: invalid input")

const (
	// padFactor oversamples the spectrum so a tone between native bins
	// loses little to scalloping.
	padFactor = 4
	// searchBins is the peak search half-width in native bins.
	searchBins = 2
)

// Amplitude estimates the peak amplitude of the sinusoid at freqHz in x.
func Amplitude(x []float64, freqHz, sampleRate float64) (float64, error) {
	if err := validate(len(x), freqHz, sampleRate); err != nil {
		return 0, err
	}

	coeffs := taper(len(x))
	gain := vecmath.Sum(coeffs)

	windowed := make([]float64, len(x))
	vecmath.MulBlock(windowed, x, coeffs)

	mag, err := spectrum(windowed, nextPowerOf2(padFactor*len(x)))
	if err != nil {
		return 0, err
	}

	fftSize := 2 * (len(mag) - 1)
	center := freqHz * float64(fftSize) / sampleRate
	span := searchBins * fftSize / len(x)

	lo := clampInt(int(math.Floor(center))-span, 0, len(mag)-1)
	hi := clampInt(int(math.Ceil(center))+span, 0, len(mag)-1)

	peak := 0.0
	for k := lo; k <= hi; k++ {
		peak = math.Max(peak, mag[k])
	}

	return 2 * peak / gain, nil
}

// AttenuationDB returns 20*log10 of the amplitude ratio out/in at freqHz.
// A tone that vanishes from out gives -Inf.
func AttenuationDB(in, out []float64, freqHz, sampleRate float64) (float64, error) {
	ain, err := Amplitude(in, freqHz, sampleRate)
	if err != nil {
		return 0, fmt.Errorf("input: %w", err)
	}

	aout, err := Amplitude(out, freqHz, sampleRate)
	if err != nil {
		return 0, fmt.Errorf("output: %w", err)
	}

	if ain == 0 {
		return 0, fmt.Errorf("%w: no energy at %g Hz in the input", ErrInvalidInput, freqHz)
	}

	return core.LinearToDB(aout / ain), nil
}

func validate(n int, freqHz, sampleRate float64) error {
	switch {
	case n == 0:
		return fmt.Errorf("%w: empty signal", ErrInvalidInput)
	case !(sampleRate > 0) || math.IsInf(sampleRate, 0):
		return fmt.Errorf("%w: sample rate %g", ErrInvalidInput, sampleRate)
	case !(freqHz > 0) || freqHz >= sampleRate/2:
		return fmt.Errorf("%w: frequency %g Hz outside (0, %g)", ErrInvalidInput, freqHz, sampleRate/2)
	}

	return nil
}

// spectrum returns |X[k]| for k in [0, fftSize/2] of x zero-padded to
// fftSize.
func spectrum(x []float64, fftSize int) ([]float64, error) {
	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("tone: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("tone: fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// taper returns a Hann window, or a rectangular one when n is too short
// for the Hann window to be non-zero.
func taper(n int) []float64 {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1
	}

	if n < 3 {
		return coeffs
	}

	return window.Hann(coeffs)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
