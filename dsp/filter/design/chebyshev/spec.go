package chebyshev

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-cheby/dsp/core"
)

var (
	// ErrInvalidParameter reports an out-of-range or non-finite design input.
	ErrInvalidParameter = errors.New("chebyshev: invalid parameter")

	// ErrUnsupportedBandType reports an unrecognized band selector.
	ErrUnsupportedBandType = errors.New("chebyshev: unsupported band type")
)

// BandType selects the response shape.
type BandType int

const (
	Lowpass BandType = iota
	Highpass
	Bandpass
	Bandstop
)

var bandNames = map[string]BandType{
	"lowpass": Lowpass, "low": Lowpass, "lp": Lowpass, "l": Lowpass,
	"highpass": Highpass, "high": Highpass, "hp": Highpass, "h": Highpass,
	"bandpass": Bandpass, "band": Bandpass, "pass": Bandpass, "bp": Bandpass,
	"bandstop": Bandstop, "stop": Bandstop, "bs": Bandstop, "bands": Bandstop,
}

// ParseBandType maps a band name such as "lowpass", "hp" or "stop"
// (case-insensitive) to its BandType.
func ParseBandType(name string) (BandType, error) {
	b, ok := bandNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBandType, name)
	}

	return b, nil
}

func (b BandType) String() string {
	switch b {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return fmt.Sprintf("BandType(%d)", int(b))
	}
}

// Edges returns how many critical frequencies the band type needs.
func (b BandType) Edges() int {
	if b == Bandpass || b == Bandstop {
		return 2
	}

	return 1
}

func (b BandType) valid() bool {
	return b >= Lowpass && b <= Bandstop
}

// Family selects the Chebyshev variant.
type Family int

const (
	// TypeI has equiripple passband and monotonic stopband.
	TypeI Family = iota
	// TypeII has monotonic passband and equiripple stopband.
	TypeII
)

func (f Family) String() string {
	switch f {
	case TypeI:
		return "Chebyshev Type I"
	case TypeII:
		return "Chebyshev Type II"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Spec describes a filter to design.
type Spec struct {
	// Order is the prototype order; bandpass and bandstop designs have
	// twice as many poles.
	Order int
	// RippleDB is the passband ripple (Type I) or the minimum stopband
	// attenuation (Type II), as a positive dB value.
	RippleDB float64
	// Cutoff holds one critical frequency in Hz for lowpass/highpass and
	// the ascending band edges for bandpass/bandstop.
	Cutoff []float64
	Band   BandType
	// SampleRate of the digital filter in Hz.
	SampleRate float64
}

// Validate checks the spec and returns a wrapped ErrInvalidParameter or
// ErrUnsupportedBandType naming the offending field.
func (s Spec) Validate() error {
	if !s.Band.valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedBandType, s.Band)
	}

	if s.Order < 1 {
		return fmt.Errorf("%w: order must be >= 1, got %d", ErrInvalidParameter, s.Order)
	}

	if !core.IsFinite(s.RippleDB) || s.RippleDB <= 0 {
		return fmt.Errorf("%w: ripple must be a positive dB value, got %v", ErrInvalidParameter, s.RippleDB)
	}

	if !core.IsFinite(s.SampleRate) || s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidParameter, s.SampleRate)
	}

	if len(s.Cutoff) != s.Band.Edges() {
		return fmt.Errorf("%w: %v needs %d critical frequencies, got %d",
			ErrInvalidParameter, s.Band, s.Band.Edges(), len(s.Cutoff))
	}

	nyquist := s.SampleRate / 2
	for i, f := range s.Cutoff {
		if !core.IsFinite(f) || f <= 0 || f >= nyquist {
			return fmt.Errorf("%w: critical frequency %v Hz outside (0, %v)", ErrInvalidParameter, f, nyquist)
		}

		if i > 0 && f <= s.Cutoff[i-1] {
			return fmt.Errorf("%w: band edges must ascend, got %v", ErrInvalidParameter, s.Cutoff)
		}
	}

	return nil
}
