package lti

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-cheby/dsp/filter/biquad"
	"github.com/cwbudde/algo-cheby/internal/polyroot"
)

// Sections factors a digital ZPK into a cascade of second-order sections.
//
// Poles are taken in order of their distance to the unit circle, closest
// first, and each is matched with the nearest remaining zeros. The section
// holding the closest poles ends up last in the cascade. The overall gain
// is folded into the first section. Missing zeros are placed at the origin,
// so a system of relative degree d is realized as z^d * H(z), the causal
// reading of its coefficient arrays. A system with no zeros or poles yields
// a single constant section.
func (z ZPK) Sections() ([]biquad.Coefficients, error) {
	if len(z.Zeros) == 0 && len(z.Poles) == 0 {
		return []biquad.Coefficients{{B0: z.Gain}}, nil
	}

	zeros := slices.Clone(z.Zeros)
	poles := slices.Clone(z.Poles)

	// Pad the shorter list with roots at the origin, then round up to an
	// even count.
	for len(poles) < len(zeros) {
		poles = append(poles, 0)
	}

	for len(zeros) < len(poles) {
		zeros = append(zeros, 0)
	}

	n := (len(poles) + 1) / 2
	if len(poles)%2 == 1 {
		poles = append(poles, 0)
		zeros = append(zeros, 0)
	}

	zr, err := conjugateHalf(zeros)
	if err != nil {
		return nil, fmt.Errorf("lti: zeros: %w", err)
	}

	pr, err := conjugateHalf(poles)
	if err != nil {
		return nil, fmt.Errorf("lti: poles: %w", err)
	}

	pairs := &rootPairer{zeros: zr, poles: pr}

	sections := make([]biquad.Coefficients, n)
	for i := n - 1; i >= 0; i-- {
		sz, sp, err := pairs.next()
		if err != nil {
			return nil, err
		}

		sections[i] = sectionFromRoots(sz, sp)
	}

	gain := z.Gain
	sections[0].B0 *= gain
	sections[0].B1 *= gain
	sections[0].B2 *= gain

	return sections, nil
}

// conjugateHalf reduces a conjugate-closed root set to its complex members
// with positive imaginary part (sorted by real part) followed by its real
// members (ascending). Real members have their imaginary part cleared.
func conjugateHalf(roots []complex128) ([]complex128, error) {
	var reals, cplx []complex128

	for _, r := range roots {
		if isRealRoot(r) {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		cplx = append(cplx, r)
	}

	conj, err := polyroot.PairConjugates(cplx)
	if err != nil {
		return nil, fmt.Errorf("%w: complex root without conjugate", ErrInvalidTransform)
	}

	out := make([]complex128, 0, len(conj)+len(reals))
	for _, pair := range conj {
		upper := pair[0]
		if imag(upper) < 0 {
			upper = pair[1]
		}

		out = append(out, upper)
	}

	slices.SortStableFunc(out, func(a, b complex128) int { return cmp.Compare(real(a), real(b)) })
	slices.SortFunc(reals, func(a, b complex128) int { return cmp.Compare(real(a), real(b)) })

	return append(out, reals...), nil
}

// rootPairer hands out section root sets from conjugate halves.
type rootPairer struct {
	zeros []complex128
	poles []complex128
}

func (rp *rootPairer) next() (zeros, poles []complex128, err error) {
	if len(rp.poles) == 0 {
		return nil, nil, fmt.Errorf("%w: ran out of poles while pairing", ErrInvalidTransform)
	}

	idx := 0
	for i, p := range rp.poles {
		if unitDistance(p) < unitDistance(rp.poles[idx]) {
			idx = i
		}
	}

	p1 := rp.poles[idx]
	rp.poles = slices.Delete(rp.poles, idx, idx+1)

	switch {
	case isExactReal(p1) && countReal(rp.poles) == 0:
		// Last real pole: pair with the nearest real zero, one order each.
		z1, err := rp.takeZero(p1, pickReal)
		if err != nil {
			return nil, nil, err
		}

		return []complex128{z1, 0}, []complex128{p1, 0}, nil

	case len(rp.poles)+1 == len(rp.zeros) && !isExactReal(p1) &&
		countReal(rp.poles) == 1 && countReal(rp.zeros) == 1:
		// One real pole and one real zero remain; they must end up
		// together, so this complex pole takes a complex zero.
		z1, err := rp.takeZero(p1, pickComplex)
		if err != nil {
			return nil, nil, err
		}

		return []complex128{z1, cmplx.Conj(z1)}, []complex128{p1, cmplx.Conj(p1)}, nil
	}

	p2 := cmplx.Conj(p1)
	if isExactReal(p1) {
		best := -1
		for i, p := range rp.poles {
			if isExactReal(p) && (best < 0 || unitDistance(p) < unitDistance(rp.poles[best])) {
				best = i
			}
		}

		p2 = rp.poles[best]
		rp.poles = slices.Delete(rp.poles, best, best+1)
	}

	poles = []complex128{p1, p2}

	if len(rp.zeros) == 0 {
		return nil, poles, nil
	}

	z1, err := rp.takeZero(p1, pickAny)
	if err != nil {
		return nil, nil, err
	}

	if !isExactReal(z1) {
		return []complex128{z1, cmplx.Conj(z1)}, poles, nil
	}

	if len(rp.zeros) == 0 {
		return []complex128{z1}, poles, nil
	}

	z2, err := rp.takeZero(p1, pickReal)
	if err != nil {
		return nil, nil, err
	}

	return []complex128{z1, z2}, poles, nil
}

type zeroKind int

const (
	pickAny zeroKind = iota
	pickReal
	pickComplex
)

// takeZero removes and returns the zero of the requested kind closest to
// target.
func (rp *rootPairer) takeZero(target complex128, kind zeroKind) (complex128, error) {
	best := -1
	for i, z := range rp.zeros {
		switch kind {
		case pickReal:
			if !isExactReal(z) {
				continue
			}
		case pickComplex:
			if isExactReal(z) {
				continue
			}
		}

		if best < 0 || cmplx.Abs(z-target) < cmplx.Abs(rp.zeros[best]-target) {
			best = i
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%w: no zero left to pair with pole %v", ErrInvalidTransform, target)
	}

	z := rp.zeros[best]
	rp.zeros = slices.Delete(rp.zeros, best, best+1)

	return z, nil
}

func unitDistance(p complex128) float64 {
	return math.Abs(1 - cmplx.Abs(p))
}

func isExactReal(x complex128) bool {
	return imag(x) == 0
}

func countReal(roots []complex128) int {
	n := 0
	for _, r := range roots {
		if isExactReal(r) {
			n++
		}
	}

	return n
}

// sectionFromRoots expands up to two zeros and exactly two poles into a
// section. Missing leading numerator terms become leading zero coefficients
// so lower-order numerators add pure delay.
func sectionFromRoots(zeros, poles []complex128) biquad.Coefficients {
	var b, a [3]float64

	copy(b[3-len(zeros)-1:], polyroot.RealPoly(zeros))
	copy(a[3-len(poles)-1:], polyroot.RealPoly(poles))

	return biquad.Coefficients{B0: b[0], B1: b[1], B2: b[2], A1: a[1], A2: a[2]}
}
