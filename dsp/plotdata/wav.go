package plotdata

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-cheby/dsp/signal"
)

// ErrUnsupportedBitDepth is returned for bit depths other than 16 and 24.
var ErrUnsupportedBitDepth = errors.New("plotdata: unsupported bit depth")

// Headroom is the peak level, relative to full scale, of exported audio.
const Headroom = 0.99

const wavFormatPCM = 1

// WriteWAV encodes s as mono PCM at the given bit depth. Samples are
// peak-normalized to Headroom; a silent signal stays silent.
func WriteWAV(ws io.WriteSeeker, s signal.Signal, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	rate := int(math.Round(s.SampleRate))
	if rate <= 0 {
		return fmt.Errorf("plotdata: sample rate %g", s.SampleRate)
	}

	normalized, err := signal.Normalize(s.Samples, Headroom)
	if err != nil {
		return fmt.Errorf("plotdata: %w", err)
	}

	fullScale := float64(int(1)<<(bitDepth-1) - 1)

	data := make([]int, len(normalized))
	for i, v := range normalized {
		data[i] = int(math.Round(v * fullScale))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(ws, rate, bitDepth, 1, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("plotdata: wav encode: %w", err)
	}

	return enc.Close()
}
