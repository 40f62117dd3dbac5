// Package chebyshev designs Chebyshev Type I and Type II IIR filters.
//
// A [Spec] names the order, the ripple figure in dB, the critical
// frequencies in Hz, the band type and the sample rate. [Design] builds the
// analog prototype, moves it to the requested band at the pre-warped edge
// frequencies, and returns both the analog system and its bilinear-transform
// image as cascaded second-order sections.
//
// For Type I the ripple is the maximum passband ripple and the critical
// frequency is where the gain first drops below -RippleDB. For Type II it is
// the minimum stopband attenuation and the critical frequency is where the
// gain first reaches -RippleDB.
package chebyshev
