// Package plotdata exports evaluation results in formats an external plotting
// or audio tool can consume: CSV tables for the frequency response, group
// delay and time-domain signals, mono PCM WAV files, and the reference lines
// drawn on a response chart.
package plotdata
