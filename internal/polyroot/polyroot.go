// Package polyroot provides polynomial root-finding, root-to-polynomial
// expansion and conjugate pairing utilities shared by filter design packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Poly expands roots into monic polynomial coefficients in descending power
// order: Poly(r) = [1, c1, ..., cn] such that prod(x - r[i]) = sum(c[k] x^(n-k)).
// An empty root set yields [1].
func Poly(roots []complex128) []complex128 {
	out := make([]complex128, 1, len(roots)+1)
	out[0] = 1

	for _, r := range roots {
		out = append(out, 0)
		for k := len(out) - 1; k > 0; k-- {
			out[k] -= r * out[k-1]
		}
	}

	return out
}

// RealPoly expands roots into real monic polynomial coefficients. The roots
// are expected to be closed under conjugation, so the imaginary parts of the
// expansion cancel and are dropped.
func RealPoly(roots []complex128) []float64 {
	c := Poly(roots)

	out := make([]float64, len(c))
	for i := range c {
		out[i] = real(c[i])
	}

	return out
}

// Roots returns the roots of a real polynomial given in descending power
// order. Leading zeros are stripped and trailing zeros are reported as roots
// at the origin. The remaining polynomial is rescaled to unit geometric root
// radius, made monic, and solved as the eigenvalues of its companion matrix.
// Durand-Kerner is the fallback when the eigen solver does not converge.
func Roots(coeff []float64) ([]complex128, error) {
	start := 0
	for start < len(coeff) && coeff[start] == 0 {
		start++
	}

	end := len(coeff)
	for end > start && coeff[end-1] == 0 {
		end--
	}

	if start == len(coeff) {
		return nil, ErrDegeneratePolynomial
	}

	trimmed := coeff[start:end]
	atOrigin := len(coeff) - end

	roots := make([]complex128, 0, len(trimmed)-1+atOrigin)
	for range atOrigin {
		roots = append(roots, 0)
	}

	n := len(trimmed) - 1
	if n == 0 {
		return roots, nil
	}

	// Geometric mean of the root magnitudes.
	scale := math.Pow(math.Abs(trimmed[n]/trimmed[0]), 1/float64(n))
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	// p(scale*y) / (c0*scale^n): the y^(n-i) coefficient is c_i/(c0*scale^i).
	monic := make([]float64, len(trimmed))
	for i, c := range trimmed {
		monic[i] = c / trimmed[0] / math.Pow(scale, float64(i))
	}

	found, ok := companionRoots(monic)
	if !ok {
		scaled := make([]complex128, len(monic))
		for i, c := range monic {
			scaled[i] = complex(c, 0)
		}

		var err error

		found, err = DurandKerner(scaled)
		if err != nil {
			return nil, err
		}
	}

	for _, r := range found {
		roots = append(roots, r*complex(scale, 0))
	}

	return roots, nil
}

// companionRoots returns the eigenvalues of the companion matrix of a monic
// polynomial [1, c1, ..., cn]. ok is false when the factorization fails.
func companionRoots(monic []float64) ([]complex128, bool) {
	n := len(monic) - 1

	a := mat.NewDense(n, n, nil)
	for j := range n {
		a.Set(0, j, -monic[j+1])
	}

	for i := 1; i < n; i++ {
		a.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if !eig.Factorize(a, mat.EigenNone) {
		return nil, false
	}

	vals := eig.Values(nil)
	for _, v := range vals {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, false
		}
	}

	return vals, true
}

// QuadFromPair expands two roots into monic second-order polynomial
// coefficients (1, -(r1+r2), r1*r2). The pair must be either a conjugate
// pair or two real roots so the result is real.
func QuadFromPair(pair [2]complex128) (float64, float64, float64, error) {
	root1 := pair[0]
	root2 := pair[1]

	realPair := isReal(root1) && isReal(root2)
	if !realPair && !IsConjugate(root1, root2, ConjugateTol) {
		return 0, 0, 0, ErrDegeneratePolynomial
	}

	sum := root1 + root2
	prod := root1 * root2

	return 1.0, -real(sum), real(prod), nil
}

func isReal(x complex128) bool {
	return math.Abs(imag(x)) <= ConjugateTol*math.Max(1, cmplx.Abs(x))
}

// PairConjugates groups a slice of complex roots into conjugate pairs. For
// each unused root, it finds the closest match to the expected conjugate and
// validates the pairing within ConjugateTol.
func PairConjugates(roots []complex128) ([][2]complex128, error) {
	used := make([]bool, len(roots))
	pairs := make([][2]complex128, 0, len(roots)/2)

	for i := range roots {
		if used[i] {
			continue
		}

		root := roots[i]
		conj := complex(real(root), -imag(root))
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			d := cmplx.Abs(roots[j] - conj)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], ConjugateTol) {
			return nil, ErrDegeneratePolynomial
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, roots[best]})
	}

	return pairs, nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 1000
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// PolyEvalReal evaluates a real-coefficient polynomial at complex x using
// Horner's method. Coefficients are in descending power order.
func PolyEvalReal(coeff []float64, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	v := complex(coeff[0], 0)
	for i := 1; i < len(coeff); i++ {
		v = v*x + complex(coeff[i], 0)
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
