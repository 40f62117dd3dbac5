// Package biquad applies and analyzes cascades of second-order IIR sections.
//
// A [Section] runs Direct Form II Transposed recursion for one set of
// [Coefficients]; a [Chain] cascades sections behind an optional input gain.
// [Filter] is the one-shot form used for whole signals: zero initial state,
// output of identical length.
//
// Besides processing, the package evaluates what a cascade does: complex
// response, magnitude, poles and zeros, and closed-form group delay per
// section. Coefficient design lives in dsp/filter/design.
package biquad
