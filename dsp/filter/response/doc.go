// Package response evaluates what a filter does: analog frequency response
// of a transfer function on an automatically chosen log-spaced grid, digital
// response of a second-order-section cascade, and group delay in samples.
//
// Group delay is computed in closed form, either per section from pole and
// zero positions or from the transfer function coefficients, so no phase
// unwrapping or numeric differentiation is involved.
package response
