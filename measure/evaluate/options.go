package evaluate

import (
	"github.com/cwbudde/algo-cheby/dsp/filter/response"
	"github.com/cwbudde/algo-cheby/dsp/signal"
)

// DefaultSettle is the fraction of samples skipped before measuring tones.
const DefaultSettle = 0.25

type config struct {
	tones          []float64
	duration       float64
	responsePoints int
	delayPoints    int
	settle         float64
}

func defaultConfig() config {
	return config{
		tones:          []float64{signal.DefaultLowTone, signal.DefaultHighTone},
		duration:       signal.DefaultDuration,
		responsePoints: response.DefaultAnalogPoints,
		delayPoints:    response.DefaultDigitalPoints,
		settle:         DefaultSettle,
	}
}

// Option configures Run.
type Option func(*config)

// WithTones replaces the test-signal tone frequencies in Hz.
func WithTones(freqsHz ...float64) Option {
	return func(c *config) {
		if len(freqsHz) > 0 {
			c.tones = append([]float64(nil), freqsHz...)
		}
	}
}

// WithDuration sets the test-signal length in seconds. Non-positive values
// are ignored.
func WithDuration(seconds float64) Option {
	return func(c *config) {
		if seconds > 0 {
			c.duration = seconds
		}
	}
}

// WithResponsePoints sets the analog response grid size.
func WithResponsePoints(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.responsePoints = n
		}
	}
}

// WithGroupDelayPoints sets the group delay grid size.
func WithGroupDelayPoints(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.delayPoints = n
		}
	}
}

// WithSettle sets the leading fraction of samples excluded from tone
// measurement. Values outside [0, 1) are ignored.
func WithSettle(fraction float64) Option {
	return func(c *config) {
		if fraction >= 0 && fraction < 1 {
			c.settle = fraction
		}
	}
}
