// Package core holds the processing configuration and the small numeric
// helpers (dB conversion, tolerance checks, Chebyshev ripple factor) shared
// by the filter design, analysis and measurement packages.
package core
