// Package testutil holds reference signals and tolerance checks shared by
// package tests.
package testutil

import "math"

// DeterministicSine returns amplitude*sin(2*pi*freqHz*n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// SumOfSines returns the sum of unit sines at freqs.
func SumOfSines(sampleRate float64, length int, freqs ...float64) []float64 {
	out := make([]float64, length)

	for _, f := range freqs {
		for i, v := range DeterministicSine(f, sampleRate, 1, length) {
			out[i] += v
		}
	}

	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// Tail returns the trailing part of x after dropping the first fraction of
// samples; filter tests use it to skip the start-up transient.
func Tail(x []float64, fraction float64) []float64 {
	skip := int(math.Round(float64(len(x)) * fraction))
	skip = max(0, min(skip, len(x)))

	return x[skip:]
}
