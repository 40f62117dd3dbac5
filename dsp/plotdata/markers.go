package plotdata

import "github.com/cwbudde/algo-cheby/dsp/filter/design/chebyshev"

// Markers are the reference lines of a response chart.
type Markers struct {
	// CutoffRadPerSec holds one vertical line per band edge, on the
	// pre-warped analog axis.
	CutoffRadPerSec []float64
	// RippleDB places the horizontal line at -RippleDB: the passband
	// ripple floor of a Type I design, the stopband ceiling of a Type II.
	RippleDB float64
}

// MarkersFor returns the chart markers of a design.
func MarkersFor(r *chebyshev.Result) Markers {
	return Markers{
		CutoffRadPerSec: r.CriticalFrequencies(),
		RippleDB:        r.Spec.RippleDB,
	}
}

// LevelDB is the dB value of the horizontal marker.
func (m Markers) LevelDB() float64 {
	return -m.RippleDB
}
