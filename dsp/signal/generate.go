package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cheby/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Default test-signal parameters: a 3 Hz tone well inside a 25 Hz passband
// plus a 50 Hz tone in its stopband, one second at 1 kHz.
const (
	DefaultLowTone    = 3.0
	DefaultHighTone   = 50.0
	DefaultSampleRate = 1000.0
	DefaultDuration   = 1.0
)

// Signal is a uniformly sampled waveform with index-aligned timestamps.
type Signal struct {
	Time       []float64
	Samples    []float64
	SampleRate float64
}

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.Samples) }

// Duration returns the closed-open span covered by the samples in seconds.
func (s Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / s.SampleRate
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SamplesFor returns the number of samples covering duration seconds.
func (g *Generator) SamplesFor(duration float64) (int, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("duration must be > 0: %f", duration)
	}
	n := int(math.Round(duration * g.cfg.SampleRate))
	if n <= 0 {
		return 0, fmt.Errorf("duration %f yields no samples at %f Hz", duration, g.cfg.SampleRate)
	}
	return n, nil
}

// Timeline returns n uniformly spaced timestamps over [0, n/sampleRate).
func (g *Generator) Timeline(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("timeline samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("timeline sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) / g.cfg.SampleRate
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if !core.IsFinite(freqHz, amplitude) {
		return nil, fmt.Errorf("sine parameters must be finite: freq=%f amplitude=%f", freqHz, amplitude)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Tones generates the sum of unit-amplitude sines at the given frequencies,
// together with its timestamps.
func (g *Generator) Tones(samples int, freqsHz ...float64) (Signal, error) {
	if len(freqsHz) == 0 {
		return Signal{}, fmt.Errorf("tones: at least one frequency is required")
	}
	t, err := g.Timeline(samples)
	if err != nil {
		return Signal{}, err
	}
	sum := make([]float64, samples)
	for _, f := range freqsHz {
		tone, err := g.Sine(f, 1, samples)
		if err != nil {
			return Signal{}, err
		}
		vecmath.AddBlockInPlace(sum, tone)
	}
	return Signal{Time: t, Samples: sum, SampleRate: g.cfg.SampleRate}, nil
}

// TwoTone generates sin(2*pi*f1*t) + sin(2*pi*f2*t).
func (g *Generator) TwoTone(f1, f2 float64, samples int) (Signal, error) {
	return g.Tones(samples, f1, f2)
}

// DefaultTestSignal returns the 3 Hz + 50 Hz test signal sampled at 1 kHz
// for one second.
func DefaultTestSignal() Signal {
	g := NewGenerator(core.WithSampleRate(DefaultSampleRate))
	s, err := g.TwoTone(DefaultLowTone, DefaultHighTone, int(DefaultDuration*DefaultSampleRate))
	if err != nil {
		panic(err) // constant parameters
	}
	return s
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
