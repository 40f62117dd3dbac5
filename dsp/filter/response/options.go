package response

const (
	// DefaultAnalogPoints is the grid size of AnalogResponse.
	DefaultAnalogPoints = 200
	// DefaultDigitalPoints is the grid size of digital responses and delays.
	DefaultDigitalPoints = 512
)

type config struct {
	points int

	haveRoots    bool
	zeros, poles []complex128
}

// Option configures an evaluation.
type Option func(*config)

// WithPoints sets the number of grid points. Values below 1 are ignored.
func WithPoints(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.points = n
		}
	}
}

// WithRoots supplies the zeros and poles of the analog system so
// AnalogResponse picks its grid from them instead of factoring the
// transfer function.
func WithRoots(zeros, poles []complex128) Option {
	return func(c *config) {
		c.haveRoots = true
		c.zeros = zeros
		c.poles = poles
	}
}

func applyOptions(defaultPoints int, opts []Option) config {
	cfg := config{points: defaultPoints}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// DigitalGrid returns n frequencies evenly spaced over [0, pi) rad/sample.
func DigitalGrid(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = pi * float64(i) / float64(n)
	}

	return w
}
