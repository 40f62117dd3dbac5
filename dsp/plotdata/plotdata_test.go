package plotdata

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cheby/dsp/filter/design/chebyshev"
	"github.com/cwbudde/algo-cheby/dsp/filter/response"
	"github.com/cwbudde/algo-cheby/dsp/signal"
)

func readCSV(t *testing.T, b *bytes.Buffer) [][]string {
	t.Helper()

	rows, err := csv.NewReader(b).ReadAll()
	require.NoError(t, err)

	return rows
}

func parse(t *testing.T, s string) float64 {
	t.Helper()

	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)

	return v
}

func TestWriteResponseCSV(t *testing.T) {
	r := response.FrequencyResponse{
		Frequencies: []float64{0, 1},
		Values:      []complex128{1, complex(0, -0.1)},
	}

	var b bytes.Buffer
	require.NoError(t, WriteResponseCSV(&b, r))

	rows := readCSV(t, &b)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"omega", "magnitude_db", "phase_rad"}, rows[0])
	assert.Equal(t, []string{"0", "0", "0"}, rows[1])
	assert.InDelta(t, -20, parse(t, rows[2][1]), 1e-12)
	assert.InDelta(t, -math.Pi/2, parse(t, rows[2][2]), 1e-12)

	err := WriteResponseCSV(&b, response.FrequencyResponse{Frequencies: []float64{1}})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestWriteGroupDelayCSV(t *testing.T) {
	gd := response.GroupDelay{
		Frequencies: []float64{0, math.Pi / 2},
		Delays:      []float64{3.5, 7},
	}

	var b bytes.Buffer
	require.NoError(t, WriteGroupDelayCSV(&b, gd, 1000))

	rows := readCSV(t, &b)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"omega", "hz", "delay_samples"}, rows[0])
	assert.InDelta(t, 250, parse(t, rows[2][1]), 1e-12)
	assert.Equal(t, "3.5", rows[1][2])

	err := WriteGroupDelayCSV(&b, response.GroupDelay{Delays: []float64{1}}, 1000)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestWriteSignalsCSV(t *testing.T) {
	in := signal.DefaultTestSignal()
	out := signal.Signal{Time: in.Time, Samples: make([]float64, in.Len()), SampleRate: in.SampleRate}

	var b bytes.Buffer
	require.NoError(t, WriteSignalsCSV(&b, in, out))

	rows := readCSV(t, &b)
	require.Len(t, rows, in.Len()+1)
	assert.Equal(t, []string{"t", "input", "filtered"}, rows[0])
	assert.InDelta(t, 0.5, parse(t, rows[501][0]), 1e-12)

	out.Samples = out.Samples[:10]
	assert.ErrorIs(t, WriteSignalsCSV(&b, in, out), ErrLengthMismatch)
}

func TestWriteWAV(t *testing.T) {
	for _, depth := range []int{16, 24} {
		t.Run(strconv.Itoa(depth), func(t *testing.T) {
			s := signal.DefaultTestSignal()
			path := filepath.Join(t.TempDir(), "signal.wav")

			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, WriteWAV(f, s, depth))
			require.NoError(t, f.Close())

			f, err = os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			dec := wav.NewDecoder(f)
			require.True(t, dec.IsValidFile())

			buf, err := dec.FullPCMBuffer()
			require.NoError(t, err)

			assert.Equal(t, uint32(1000), dec.SampleRate)
			assert.Equal(t, uint16(depth), dec.BitDepth)
			assert.Equal(t, uint16(1), dec.NumChans)
			require.Len(t, buf.Data, s.Len())

			fullScale := float64(int(1)<<(depth-1) - 1)
			peak := 0
			for _, v := range buf.Data {
				peak = max(peak, v, -v)
			}

			assert.Equal(t, int(math.Round(Headroom*fullScale)), peak)
		})
	}
}

func TestWriteWAV_Errors(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	require.NoError(t, err)
	defer f.Close()

	s := signal.DefaultTestSignal()
	assert.ErrorIs(t, WriteWAV(f, s, 8), ErrUnsupportedBitDepth)

	s.SampleRate = 0
	assert.Error(t, WriteWAV(f, s, 16))
}

func TestMarkersFor(t *testing.T) {
	r, err := chebyshev.Cheby1(chebyshev.Spec{
		Order: 10, RippleDB: 1, Cutoff: []float64{25},
		Band: chebyshev.Lowpass, SampleRate: 1000,
	})
	require.NoError(t, err)

	m := MarkersFor(r)
	require.Len(t, m.CutoffRadPerSec, 1)
	assert.InDelta(t, 2000*math.Tan(math.Pi*25/1000), m.CutoffRadPerSec[0], 1e-9)
	assert.Equal(t, -1.0, m.LevelDB())
}
