// Package tone estimates the amplitude of individual sinusoids in a sampled
// signal.
//
// Amplitudes are read from a Hann-windowed, zero-padded FFT: the largest bin
// near the requested frequency is taken and corrected by the window's
// coherent gain. Comparing the estimate before and after a filter gives its
// attenuation at that frequency.
package tone
