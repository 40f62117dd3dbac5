package lti

import (
	"fmt"
	"math"
	"math/cmplx"
)

func validFrequency(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidTransform, name, v)
	}

	return nil
}

func (z ZPK) properDegree() (int, error) {
	degree := z.RelativeDegree()
	if degree < 0 {
		return 0, fmt.Errorf("%w: %d zeros exceed %d poles", ErrInvalidTransform, len(z.Zeros), len(z.Poles))
	}

	return degree, nil
}

// Lowpass scales a unit-cutoff lowpass prototype to cutoff wo (rad/s).
func (z ZPK) Lowpass(wo float64) (ZPK, error) {
	if err := validFrequency("cutoff", wo); err != nil {
		return ZPK{}, err
	}

	degree, err := z.properDegree()
	if err != nil {
		return ZPK{}, err
	}

	out := ZPK{
		Zeros: scaleRoots(z.Zeros, wo),
		Poles: scaleRoots(z.Poles, wo),
		Gain:  z.Gain * math.Pow(wo, float64(degree)),
	}

	return out, nil
}

// Highpass turns a unit-cutoff lowpass prototype into a highpass with cutoff
// wo (rad/s). Zeros at infinity move to the origin.
func (z ZPK) Highpass(wo float64) (ZPK, error) {
	if err := validFrequency("cutoff", wo); err != nil {
		return ZPK{}, err
	}

	degree, err := z.properDegree()
	if err != nil {
		return ZPK{}, err
	}

	zeros := invertRoots(z.Zeros, wo)
	zeros = append(zeros, make([]complex128, degree)...)

	out := ZPK{
		Zeros: zeros,
		Poles: invertRoots(z.Poles, wo),
		Gain:  z.Gain * real(prodNeg(z.Zeros)/prodNeg(z.Poles)),
	}

	return out, nil
}

// Bandpass turns a unit-cutoff lowpass prototype into a bandpass centred on
// wo with bandwidth bw (both rad/s). Each root splits into two and the
// relative degree lands as zeros at the origin.
func (z ZPK) Bandpass(wo, bw float64) (ZPK, error) {
	if err := validFrequency("center", wo); err != nil {
		return ZPK{}, err
	}

	if err := validFrequency("bandwidth", bw); err != nil {
		return ZPK{}, err
	}

	degree, err := z.properDegree()
	if err != nil {
		return ZPK{}, err
	}

	half := complex(bw/2, 0)

	zeros := splitRoots(z.Zeros, half, wo, false)
	zeros = append(zeros, make([]complex128, degree)...)

	out := ZPK{
		Zeros: zeros,
		Poles: splitRoots(z.Poles, half, wo, false),
		Gain:  z.Gain * math.Pow(bw, float64(degree)),
	}

	return out, nil
}

// Bandstop turns a unit-cutoff lowpass prototype into a bandstop centred on
// wo with bandwidth bw (both rad/s). Zeros at infinity move to +-j*wo.
func (z ZPK) Bandstop(wo, bw float64) (ZPK, error) {
	if err := validFrequency("center", wo); err != nil {
		return ZPK{}, err
	}

	if err := validFrequency("bandwidth", bw); err != nil {
		return ZPK{}, err
	}

	degree, err := z.properDegree()
	if err != nil {
		return ZPK{}, err
	}

	half := complex(bw/2, 0)

	zeros := splitRoots(z.Zeros, half, wo, true)
	for range degree {
		zeros = append(zeros, complex(0, wo))
	}

	for range degree {
		zeros = append(zeros, complex(0, -wo))
	}

	out := ZPK{
		Zeros: zeros,
		Poles: splitRoots(z.Poles, half, wo, true),
		Gain:  z.Gain * real(prodNeg(z.Zeros)/prodNeg(z.Poles)),
	}

	return out, nil
}

// Bilinear maps an analog system to the z-plane at sampleRate using
// s = 2*fs*(z-1)/(z+1). Zeros at infinity move to z = -1.
func (z ZPK) Bilinear(sampleRate float64) (ZPK, error) {
	if err := validFrequency("sample rate", sampleRate); err != nil {
		return ZPK{}, err
	}

	degree, err := z.properDegree()
	if err != nil {
		return ZPK{}, err
	}

	fs2 := complex(2*sampleRate, 0)

	num := complex(1, 0)
	zeros := make([]complex128, 0, len(z.Zeros)+degree)

	for _, q := range z.Zeros {
		if q == fs2 {
			return ZPK{}, fmt.Errorf("%w: zero at s = 2*fs", ErrInvalidTransform)
		}

		num *= fs2 - q
		zeros = append(zeros, (fs2+q)/(fs2-q))
	}

	for range degree {
		zeros = append(zeros, -1)
	}

	den := complex(1, 0)
	poles := make([]complex128, 0, len(z.Poles))

	for _, p := range z.Poles {
		if p == fs2 {
			return ZPK{}, fmt.Errorf("%w: pole at s = 2*fs", ErrInvalidTransform)
		}

		den *= fs2 - p
		poles = append(poles, (fs2+p)/(fs2-p))
	}

	out := ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  z.Gain * real(num/den),
	}

	return out, nil
}

func scaleRoots(roots []complex128, w float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * complex(w, 0)
	}

	return out
}

func invertRoots(roots []complex128, w float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = complex(w, 0) / r
	}

	return out
}

// splitRoots maps every root r to the pair c +- sqrt(c^2 - wo^2), where c is
// r*half for bandpass and half/r for bandstop. The "+" images come first.
func splitRoots(roots []complex128, half complex128, wo float64, invert bool) []complex128 {
	w2 := complex(wo*wo, 0)

	out := make([]complex128, 2*len(roots))
	for i, r := range roots {
		c := r * half
		if invert {
			c = half / r
		}

		d := cmplx.Sqrt(c*c - w2)
		out[i] = c + d
		out[len(roots)+i] = c - d
	}

	return out
}
