package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-cheby/dsp/core"
	"github.com/cwbudde/algo-cheby/internal/testutil"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineMatchesReference(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	s, err := g.Sine(440, 0.5, 256)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s, testutil.DeterministicSine(440, 8000, 0.5, 256), 1e-12)
}

func TestSineErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(10, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.Sine(math.NaN(), 1, 8); err == nil {
		t.Fatal("expected error for NaN frequency")
	}
}

func TestTimelineClosedOpen(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	tl, err := g.Timeline(1000)
	if err != nil {
		t.Fatalf("Timeline() error = %v", err)
	}
	if tl[0] != 0 {
		t.Fatalf("t[0] = %v, want 0", tl[0])
	}
	if last := tl[len(tl)-1]; math.Abs(last-0.999) > 1e-12 {
		t.Fatalf("t[last] = %v, want 0.999 (endpoint excluded)", last)
	}
	for i := 1; i < len(tl); i++ {
		if d := tl[i] - tl[i-1]; math.Abs(d-0.001) > 1e-12 {
			t.Fatalf("non-uniform spacing at %d: %v", i, d)
		}
	}
}

func TestTwoToneIsSumOfSines(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	s, err := g.TwoTone(3, 50, 1000)
	if err != nil {
		t.Fatalf("TwoTone() error = %v", err)
	}
	if s.Len() != 1000 || len(s.Time) != 1000 {
		t.Fatalf("lengths = %d/%d, want 1000", s.Len(), len(s.Time))
	}
	for i, ti := range s.Time {
		want := math.Sin(2*math.Pi*3*ti) + math.Sin(2*math.Pi*50*ti)
		if math.Abs(s.Samples[i]-want) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, s.Samples[i], want)
		}
	}
	if s.Duration() != 1 {
		t.Fatalf("duration = %v, want 1", s.Duration())
	}
}

func TestTonesRequiresFrequency(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Tones(16); err == nil {
		t.Fatal("expected error without frequencies")
	}
}

func TestDefaultTestSignal(t *testing.T) {
	s := DefaultTestSignal()
	if s.SampleRate != DefaultSampleRate || s.Len() != 1000 {
		t.Fatalf("unexpected default signal: rate=%v len=%d", s.SampleRate, s.Len())
	}
	testutil.RequireFinite(t, s.Samples)
}

func TestSamplesFor(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	n, err := g.SamplesFor(0.25)
	if err != nil || n != 250 {
		t.Fatalf("SamplesFor(0.25) = %d, %v; want 250", n, err)
	}
	if _, err := g.SamplesFor(0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestNormalizeSilence(t *testing.T) {
	out, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("silence changed: %v", out)
	}
}
