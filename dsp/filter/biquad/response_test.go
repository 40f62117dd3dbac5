package biquad

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-cheby/internal/testutil"
)

func complexClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := smoothing()
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		h := c.Response(freq, sr)
		fromResponse := real(h)*real(h) + imag(h)*imag(h)

		if got := c.MagnitudeSquared(freq, sr); !almostEqual(got, fromResponse, 1e-10) {
			t.Errorf("freq=%v: MagnitudeSquared=%.15f, |Response|^2=%.15f", freq, got, fromResponse)
		}

		if got, want := c.MagnitudeDB(freq, sr), 10*math.Log10(fromResponse); !almostEqual(got, want, 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB=%.12f, want %.12f", freq, got, want)
		}

		if got := c.Phase(freq, sr); !almostEqual(got, cmplx.Phase(h), 1e-12) {
			t.Errorf("freq=%v: Phase=%.15f, arg(H)=%.15f", freq, got, cmplx.Phase(h))
		}
	}
}

func TestResponseAt_MatchesHz(t *testing.T) {
	c := smoothing()
	sr := 1000.0

	for _, f := range []float64{0, 3, 50, 250, 499} {
		w := 2 * math.Pi * f / sr
		if !complexClose(c.ResponseAt(w), c.Response(f, sr), 1e-14) {
			t.Errorf("f=%v: ResponseAt=%v, Response=%v", f, c.ResponseAt(w), c.Response(f, sr))
		}
	}
}

func TestResponse_UnitMagnitude(t *testing.T) {
	a1, a2 := -0.5, 0.3

	tests := []struct {
		name string
		c    Coefficients
	}{
		{name: "passthrough", c: Coefficients{B0: 1}},
		{name: "allpass", c: Coefficients{B0: a2, B1: a1, B2: 1, A1: a1, A2: a2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range []float64{0, 0.1, 0.5, 1, 2, 3} {
				if mag := cmplx.Abs(tt.c.ResponseAt(w)); !almostEqual(mag, 1, 1e-10) {
					t.Errorf("w=%v: |H|=%.15f, want 1", w, mag)
				}
			}
		})
	}
}

func TestResponse_DCAndNyquist(t *testing.T) {
	c := smoothing()

	// H(1) = sum(b) / sum(a); the double zero at z=-1 nulls Nyquist.
	wantDC := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	if got := real(c.ResponseAt(0)); !almostEqual(got, wantDC, 1e-12) {
		t.Errorf("DC: got %v, want %v", got, wantDC)
	}

	if mag := cmplx.Abs(c.ResponseAt(math.Pi)); mag > 1e-12 {
		t.Errorf("Nyquist: |H|=%v, want 0", mag)
	}
}

func TestChain_Response(t *testing.T) {
	coeffs := twoSectionCoeffs()
	sr := 48000.0

	for _, gain := range []float64{1, 0.5} {
		chain := NewChain(coeffs, WithGain(gain))

		for _, freq := range []float64{100, 1000, 10000} {
			want := complex(gain, 0) * coeffs[0].Response(freq, sr) * coeffs[1].Response(freq, sr)
			got := chain.Response(freq, sr)

			if !complexClose(got, want, 1e-10) {
				t.Errorf("gain=%v freq=%v: chain=%v, product=%v", gain, freq, got, want)
			}

			if db := chain.MagnitudeDB(freq, sr); !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
				t.Errorf("gain=%v freq=%v: MagnitudeDB=%v", gain, freq, db)
			}
		}
	}
}

func TestImpulseResponse(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(0.7)
	before := s.State()

	ir := s.ImpulseResponse(4)
	want := []float64{0.25, 0.55, 0.35, 0.048}

	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("ir[%d] = %.15f, want %.15f", i, ir[i], want[i])
		}
	}

	if s.State() != before {
		t.Fatalf("ImpulseResponse changed state: %v -> %v", before, s.State())
	}

	if s.ImpulseResponse(0) != nil {
		t.Fatal("ImpulseResponse(0) should be nil")
	}
}

func TestChain_ImpulseResponse_MatchesFilter(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)

	impulse := testutil.Impulse(16, 0)

	want, err := Filter(coeffs, impulse)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, chain.ImpulseResponse(len(impulse)), want, eps)

	// A delayed impulse yields the same response, shifted.
	delayed, err := Filter(coeffs, testutil.Impulse(16, 3))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, delayed[3:], want[:13], eps)
}
