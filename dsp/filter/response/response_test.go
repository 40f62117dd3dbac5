package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cheby/dsp/filter/biquad"
	"github.com/cwbudde/algo-cheby/dsp/filter/design/chebyshev"
	"github.com/cwbudde/algo-cheby/dsp/filter/lti"
)

func cheby1(t *testing.T, order int, cutoff float64) *chebyshev.Result {
	t.Helper()

	r, err := chebyshev.Cheby1(chebyshev.Spec{
		Order: order, RippleDB: 1, Cutoff: []float64{cutoff},
		Band: chebyshev.Lowpass, SampleRate: 1000,
	})
	require.NoError(t, err)

	return r
}

func TestFreqs_FirstOrder(t *testing.T) {
	tf := lti.TransferFunction{Num: []float64{1}, Den: []float64{1, 1}}

	r, err := Freqs(tf, []float64{0, 1, 100})
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	mag := r.Magnitude()
	assert.InDelta(t, 1, mag[0], 1e-15)
	assert.InDelta(t, 1/math.Sqrt2, mag[1], 1e-15)
	assert.InDelta(t, -3.0103, r.MagnitudeDB()[1], 1e-4)
	assert.InDelta(t, -math.Pi/4, r.Phase()[1], 1e-15)
	assert.InDelta(t, -40, r.MagnitudeDB()[2], 1e-3)
}

func TestFreqs_Degenerate(t *testing.T) {
	integrator := lti.TransferFunction{Num: []float64{1}, Den: []float64{1, 0}}

	_, err := Freqs(integrator, []float64{1, 0, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateFilter)

	var dfe *DegenerateFilterError
	require.True(t, errors.As(err, &dfe))
	assert.Equal(t, 0.0, dfe.Frequency)

	_, err = Freqs(lti.TransferFunction{Num: []float64{1}}, []float64{1})
	assert.ErrorIs(t, err, ErrDegenerateFilter)
}

func TestFindFrequencies(t *testing.T) {
	tf := lti.TransferFunction{Num: []float64{1}, Den: []float64{1, 2}}

	w, err := FindFrequencies(tf, 200)
	require.NoError(t, err)
	require.Len(t, w, 200)

	// Pole at -2: a decade and a half below 0.2, half a decade above 6.
	assert.InDelta(t, 0.1, w[0], 1e-15)
	assert.InDelta(t, 10, w[199], 1e-12)

	for i := 1; i < len(w); i++ {
		assert.InDelta(t, w[1]/w[0], w[i]/w[i-1], 1e-9, "log spacing at %d", i)
	}

	_, err = FindFrequencies(tf, 0)
	require.Error(t, err)
}

func TestFindFrequencies_NoPoles(t *testing.T) {
	w, err := FindFrequencies(lti.TransferFunction{Num: []float64{1}, Den: []float64{1}}, 3)
	require.NoError(t, err)

	// Fallback pole at -1000.
	assert.InDelta(t, 1e4, w[2], 1e-9)
	assert.Less(t, w[0], 1000.0)
}

func TestAnalogResponse_CoversCutoff(t *testing.T) {
	r := cheby1(t, 10, 25)

	resp, err := AnalogResponse(r.AnalogTF)
	require.NoError(t, err)
	require.Equal(t, DefaultAnalogPoints, resp.Len())

	wc := r.CriticalFrequencies()[0]
	assert.Less(t, resp.Frequencies[0], wc)
	assert.Greater(t, resp.Frequencies[resp.Len()-1], wc)

	for i, db := range resp.MagnitudeDB() {
		assert.LessOrEqual(t, db, 1e-6, "point %d at %v rad/s", i, resp.Frequencies[i])
	}

	small, err := AnalogResponse(r.AnalogTF, WithPoints(16))
	require.NoError(t, err)
	assert.Equal(t, 16, small.Len())
}

func TestAnalogResponse_HighOrder(t *testing.T) {
	bands := []struct {
		band   chebyshev.BandType
		cutoff []float64
	}{
		{chebyshev.Lowpass, []float64{25}},
		{chebyshev.Highpass, []float64{25}},
		{chebyshev.Bandpass, []float64{20, 60}},
		{chebyshev.Bandstop, []float64{20, 60}},
	}

	for _, family := range []chebyshev.Family{chebyshev.TypeI, chebyshev.TypeII} {
		ripple := 1.0
		if family == chebyshev.TypeII {
			ripple = 40
		}

		for _, order := range []int{16, 20} {
			for _, b := range bands {
				t.Run(fmt.Sprintf("%v/%v/%d", family, b.band, order), func(t *testing.T) {
					r, err := chebyshev.Design(chebyshev.Spec{
						Order: order, RippleDB: ripple, Cutoff: b.cutoff,
						Band: b.band, SampleRate: 1000,
					}, family)
					require.NoError(t, err)

					resp, err := AnalogResponse(r.AnalogTF)
					require.NoError(t, err)
					require.Equal(t, DefaultAnalogPoints, resp.Len())

					for _, wc := range r.CriticalFrequencies() {
						assert.Less(t, resp.Frequencies[0], wc)
						assert.Greater(t, resp.Frequencies[resp.Len()-1], wc)
					}

					for i, v := range resp.Values {
						assert.False(t, cmplx.IsNaN(v) || cmplx.IsInf(v), "point %d", i)
					}

					known, err := FindFrequenciesFromRoots(r.Analog.Zeros, r.Analog.Poles, DefaultAnalogPoints)
					require.NoError(t, err)
					assert.InDeltaSlice(t, known, resp.Frequencies, 1e-9*known[len(known)-1])
				})
			}
		}
	}
}

func TestAnalogResponse_WithRoots(t *testing.T) {
	r := cheby1(t, 10, 25)

	factored, err := AnalogResponse(r.AnalogTF)
	require.NoError(t, err)

	known, err := AnalogResponse(r.AnalogTF, WithRoots(r.Analog.Zeros, r.Analog.Poles))
	require.NoError(t, err)

	assert.InDeltaSlice(t, factored.Frequencies, known.Frequencies, 1e-9)

	_, err = FindFrequenciesFromRoots(nil, r.Analog.Poles, 0)
	require.Error(t, err)
}

func TestSOSFreqz_MatchesChain(t *testing.T) {
	r := cheby1(t, 6, 100)
	chain := r.Chain()

	resp, err := SOSFreqz(r.Sections, WithPoints(64))
	require.NoError(t, err)
	require.Equal(t, 64, resp.Len())
	assert.Equal(t, 0.0, resp.Frequencies[0])
	assert.InDelta(t, math.Pi/64, resp.Frequencies[1], 1e-15)

	for i, w := range resp.Frequencies {
		assert.InDelta(t, 0, cmplx.Abs(resp.Values[i]-chain.ResponseAt(w)), 1e-12)
	}
}

func TestPhase_UnwrapsLinearPhase(t *testing.T) {
	delay := make([]biquad.Coefficients, 5)
	for i := range delay {
		delay[i] = biquad.Coefficients{B2: 1}
	}

	resp, err := SOSFreqz(delay)
	require.NoError(t, err)

	phase := resp.Phase()
	for i, w := range resp.Frequencies {
		assert.InDelta(t, -10*w, phase[i], 1e-9, "w=%v", w)
	}
}

func TestMagnitudeDB_Null(t *testing.T) {
	r := FrequencyResponse{Frequencies: []float64{0}, Values: []complex128{0}}
	assert.True(t, math.IsInf(r.MagnitudeDB()[0], -1))
}

func TestSOSGroupDelay_MatchesTFGroupDelay(t *testing.T) {
	r := cheby1(t, 4, 100)

	fromSOS, err := SOSGroupDelay(r.Sections)
	require.NoError(t, err)

	fromTF, err := TFGroupDelay(r.Digital.TransferFunction())
	require.NoError(t, err)

	require.Len(t, fromSOS.Delays, DefaultDigitalPoints)
	require.Len(t, fromTF.Delays, DefaultDigitalPoints)

	for i := range fromSOS.Delays {
		// The expanded polynomials lose precision next to the
		// fourfold zero at Nyquist.
		if fromSOS.Frequencies[i] > 0.9*math.Pi {
			break
		}

		tol := 1e-6 * math.Max(1, math.Abs(fromTF.Delays[i]))
		assert.InDelta(t, fromTF.Delays[i], fromSOS.Delays[i], tol, "w=%v", fromSOS.Frequencies[i])
	}
}

func TestSOSGroupDelay_ReferenceDesign(t *testing.T) {
	r := cheby1(t, 10, 25)

	gd, err := SOSGroupDelay(r.Sections)
	require.NoError(t, err)

	for _, d := range gd.Delays {
		assert.False(t, math.IsNaN(d) || math.IsInf(d, 0))
	}

	// Passband delay is positive and peaks near the band edge.
	hz := gd.Hz(1000)
	peak := 0
	for i := range gd.Delays {
		if gd.Delays[i] > gd.Delays[peak] {
			peak = i
		}
	}

	assert.Greater(t, gd.Delays[0], 0.0)
	assert.InDelta(t, 25, hz[peak], 5)
}

func TestTFGroupDelay_PureDelay(t *testing.T) {
	gd, err := TFGroupDelay(lti.TransferFunction{Num: []float64{0, 0, 1}, Den: []float64{1}}, WithPoints(8))
	require.NoError(t, err)

	for _, d := range gd.Delays {
		assert.InDelta(t, 2, d, 1e-12)
	}
}

func TestGroupDelay_Degenerate(t *testing.T) {
	_, err := SOSGroupDelay([]biquad.Coefficients{{B0: 1, A1: -1}})

	var dfe *DegenerateFilterError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, 0.0, dfe.Frequency)

	_, err = TFGroupDelay(lti.TransferFunction{Num: []float64{1}, Den: []float64{1, -1}})
	require.ErrorIs(t, err, ErrDegenerateFilter)

	_, err = TFGroupDelay(lti.TransferFunction{})
	require.ErrorIs(t, err, ErrDegenerateFilter)
}

func TestGroupDelay_Units(t *testing.T) {
	gd := GroupDelay{Frequencies: []float64{0, math.Pi / 2}, Delays: []float64{10, 20}}

	assert.InDeltaSlice(t, []float64{0, 250}, gd.Hz(1000), 1e-12)
	assert.InDeltaSlice(t, []float64{0.01, 0.02}, gd.Seconds(1000), 1e-15)
}

func TestDigitalGrid(t *testing.T) {
	assert.Equal(t, []float64{0, math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4}, DigitalGrid(4))
	assert.Empty(t, DigitalGrid(0))
}
