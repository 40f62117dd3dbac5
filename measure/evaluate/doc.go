// Package evaluate runs the complete Chebyshev evaluation in one call:
// design a filter, compute its analog frequency response and digital group
// delay, push a multi-tone test signal through the cascade and measure how
// much of each tone survives.
package evaluate
