// Package signal generates the deterministic test waveforms used to
// exercise filter designs: single sines, sums of tones, and the default
// 3 Hz + 50 Hz two-tone signal.
package signal
