package plotdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-cheby/dsp/filter/response"
	"github.com/cwbudde/algo-cheby/dsp/signal"
)

// ErrLengthMismatch is returned when columns written side by side differ in
// length.
var ErrLengthMismatch = errors.New("plotdata: length mismatch")

// WriteResponseCSV writes omega, magnitude_db, phase_rad rows. Phase is
// unwrapped.
func WriteResponseCSV(w io.Writer, r response.FrequencyResponse) error {
	if len(r.Frequencies) != len(r.Values) {
		return fmt.Errorf("%w: %d frequencies, %d values", ErrLengthMismatch, len(r.Frequencies), len(r.Values))
	}

	return writeColumns(w, []string{"omega", "magnitude_db", "phase_rad"},
		r.Frequencies, r.MagnitudeDB(), r.Phase())
}

// WriteGroupDelayCSV writes omega, hz, delay_samples rows.
func WriteGroupDelayCSV(w io.Writer, gd response.GroupDelay, sampleRate float64) error {
	if len(gd.Frequencies) != len(gd.Delays) {
		return fmt.Errorf("%w: %d frequencies, %d delays", ErrLengthMismatch, len(gd.Frequencies), len(gd.Delays))
	}

	return writeColumns(w, []string{"omega", "hz", "delay_samples"},
		gd.Frequencies, gd.Hz(sampleRate), gd.Delays)
}

// WriteSignalsCSV writes t, input, filtered rows. The time axis is taken
// from in.
func WriteSignalsCSV(w io.Writer, in, out signal.Signal) error {
	if in.Len() != out.Len() || len(in.Time) != in.Len() {
		return fmt.Errorf("%w: time %d, input %d, filtered %d", ErrLengthMismatch, len(in.Time), in.Len(), out.Len())
	}

	return writeColumns(w, []string{"t", "input", "filtered"}, in.Time, in.Samples, out.Samples)
}

func writeColumns(w io.Writer, header []string, cols ...[]float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for i := range cols[0] {
		for j, c := range cols {
			row[j] = strconv.FormatFloat(c[i], 'g', -1, 64)
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
