package biquad

import (
	"math"
	"math/cmplx"
)

// unitCircleTol bounds how close a root radius must be to 1, and a
// frequency to the root angle, for the root to count as sitting on the
// evaluation point.
const unitCircleTol = 1e-10

// GroupDelay returns the section group delay in samples at w rad/sample.
//
// The delay is summed in closed form over the section roots: each root
// r*e^(j*theta) contributes
//
//	(r^2 - r*cos(w-theta)) / (1 - 2*r*cos(w-theta) + r^2)
//
// with zeros adding and poles subtracting. Leading zero numerator
// coefficients add one sample each. ok is false when a pole lies on the
// unit circle at w, where the delay is unbounded. A zero at the same point
// contributes its limit of 1/2.
func (c *Coefficients) GroupDelay(w float64) (delay float64, ok bool) {
	for _, p := range c.Poles() {
		d, finite := rootDelay(p, w)
		if !finite {
			return 0, false
		}

		delay -= d
	}

	if c.B0 == 0 && c.B1 == 0 && c.B2 == 0 {
		return delay, true
	}

	for _, z := range c.Zeros() {
		d, finite := rootDelay(z, w)
		if !finite {
			d = 0.5
		}

		delay += d
	}

	switch {
	case c.B0 == 0 && c.B1 == 0:
		delay += 2
	case c.B0 == 0:
		delay++
	}

	return delay, true
}

func rootDelay(root complex128, w float64) (float64, bool) {
	r := cmplx.Abs(root)
	if r == 0 {
		return 0, true
	}

	cosDiff := math.Cos(w - cmplx.Phase(root))

	den := 1 - 2*r*cosDiff + r*r
	if math.Abs(r-1) < unitCircleTol && 1-cosDiff < unitCircleTol {
		return 0, false
	}

	return (r*r - r*cosDiff) / den, true
}

// GroupDelay returns the cascade group delay in samples at w rad/sample.
// The input gain does not contribute.
func (c *Chain) GroupDelay(w float64) (float64, bool) {
	total := 0.0
	for i := range c.sections {
		d, ok := c.sections[i].GroupDelay(w)
		if !ok {
			return 0, false
		}

		total += d
	}

	return total, true
}
