package chebyshev

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-cheby/dsp/core"
	"github.com/cwbudde/algo-cheby/dsp/filter/lti"
)

// typeIPrototype returns the unit-cutoff Type I lowpass: no finite zeros and
// poles on an ellipse. Even orders start at the bottom of the ripple band so
// the DC gain is 1/sqrt(1+eps^2).
func typeIPrototype(order int, rippleDB float64) lti.ZPK {
	eps := core.RippleFactor(rippleDB)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	gain := complex(1, 0)

	for i := range order {
		m := float64(2*i - order + 1)
		theta := math.Pi * m / float64(2*order)
		p := -cmplx.Sinh(complex(mu, theta))
		poles[i] = p
		gain *= -p
	}

	k := real(gain)
	if order%2 == 0 {
		k /= math.Sqrt(1 + eps*eps)
	}

	return lti.ZPK{Poles: poles, Gain: k}
}

// typeIIPrototype returns the unit-stopband-edge Type II lowpass: zeros on
// the imaginary axis and poles reciprocal to a Type I ellipse. Odd orders
// drop the zero that would sit at infinity.
func typeIIPrototype(order int, stopbandDB float64) lti.ZPK {
	de := 1 / core.RippleFactor(stopbandDB)
	mu := math.Asinh(1/de) / float64(order)

	zeros := make([]complex128, 0, order)
	for i := range order {
		m := 2*i - order + 1
		if m == 0 {
			continue
		}

		zeros = append(zeros, complex(0, 1/math.Sin(float64(m)*math.Pi/float64(2*order))))
	}

	poles := make([]complex128, order)
	for i := range order {
		m := float64(2*i - order + 1)
		e := -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
		poles[i] = 1 / complex(math.Sinh(mu)*real(e), math.Cosh(mu)*imag(e))
	}

	num, den := complex(1, 0), complex(1, 0)
	for _, p := range poles {
		num *= -p
	}

	for _, z := range zeros {
		den *= -z
	}

	return lti.ZPK{Zeros: zeros, Poles: poles, Gain: real(num / den)}
}
