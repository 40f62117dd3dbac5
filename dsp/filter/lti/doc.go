// Package lti holds the continuous- and discrete-time system
// representations used between filter design and filter application.
//
// A [ZPK] carries zeros, poles and a real gain. It supports the classical
// lowpass-prototype frequency transforms, the bilinear transform, and
// factoring into second-order sections. A [TransferFunction] carries the
// expanded numerator and denominator polynomials in descending powers.
package lti
