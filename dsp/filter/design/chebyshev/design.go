package chebyshev

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-cheby/dsp/filter/biquad"
	"github.com/cwbudde/algo-cheby/dsp/filter/lti"
)

// Result is a complete design: the analog system at the pre-warped edge
// frequencies and its digital cascade. AnalogTF and Sections describe the
// same filter under w = 2*fs*tan(pi*f/fs).
type Result struct {
	Spec   Spec
	Family Family

	// Analog is the band-transformed prototype in rad/s.
	Analog lti.ZPK
	// AnalogTF is Analog expanded into descending powers of s.
	AnalogTF lti.TransferFunction
	// Digital is the bilinear image of Analog at Spec.SampleRate.
	Digital lti.ZPK
	// Sections is Digital factored into second-order sections.
	Sections []biquad.Coefficients
}

// Design builds a Chebyshev filter of the given family.
func Design(spec Spec, family Family) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var proto lti.ZPK

	switch family {
	case TypeI:
		proto = typeIPrototype(spec.Order, spec.RippleDB)
	case TypeII:
		proto = typeIIPrototype(spec.Order, spec.RippleDB)
	default:
		return nil, fmt.Errorf("%w: unknown family %v", ErrInvalidParameter, family)
	}

	spec.Cutoff = slices.Clone(spec.Cutoff)

	analog, err := transformBand(proto, spec)
	if err != nil {
		return nil, err
	}

	digital, err := analog.Bilinear(spec.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("chebyshev: bilinear transform: %w", err)
	}

	sections, err := digital.Sections()
	if err != nil {
		return nil, fmt.Errorf("chebyshev: section pairing: %w", err)
	}

	return &Result{
		Spec:     spec,
		Family:   family,
		Analog:   analog,
		AnalogTF: analog.TransferFunction(),
		Digital:  digital,
		Sections: sections,
	}, nil
}

// Cheby1 designs a Chebyshev Type I filter; RippleDB is the passband ripple.
func Cheby1(spec Spec) (*Result, error) {
	return Design(spec, TypeI)
}

// Cheby2 designs a Chebyshev Type II filter; RippleDB is the minimum
// stopband attenuation.
func Cheby2(spec Spec) (*Result, error) {
	return Design(spec, TypeII)
}

func transformBand(proto lti.ZPK, spec Spec) (lti.ZPK, error) {
	edges := make([]float64, len(spec.Cutoff))
	for i, f := range spec.Cutoff {
		edges[i] = lti.Prewarp(f, spec.SampleRate)
	}

	var (
		out lti.ZPK
		err error
	)

	switch spec.Band {
	case Lowpass:
		out, err = proto.Lowpass(edges[0])
	case Highpass:
		out, err = proto.Highpass(edges[0])
	case Bandpass:
		out, err = proto.Bandpass(math.Sqrt(edges[0]*edges[1]), edges[1]-edges[0])
	case Bandstop:
		out, err = proto.Bandstop(math.Sqrt(edges[0]*edges[1]), edges[1]-edges[0])
	}

	if err != nil {
		return lti.ZPK{}, fmt.Errorf("chebyshev: %v transform: %w", spec.Band, err)
	}

	return out, nil
}

// Chain returns a fresh biquad cascade running the digital design.
func (r *Result) Chain() *biquad.Chain {
	return biquad.NewChain(r.Sections)
}

// Order returns the number of poles of the digital design.
func (r *Result) Order() int {
	return len(r.Digital.Poles)
}

// AnalogFrequency maps a frequency in Hz to the rad/s axis of the analog
// result, using the same pre-warp as the design.
func (r *Result) AnalogFrequency(hz float64) float64 {
	return lti.Prewarp(hz, r.Spec.SampleRate)
}

// CriticalFrequencies returns the critical frequencies on the analog rad/s
// axis.
func (r *Result) CriticalFrequencies() []float64 {
	out := make([]float64, len(r.Spec.Cutoff))
	for i, f := range r.Spec.Cutoff {
		out[i] = r.AnalogFrequency(f)
	}

	return out
}
