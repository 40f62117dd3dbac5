package evaluate

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-cheby/dsp/core"
	"github.com/cwbudde/algo-cheby/dsp/filter/biquad"
	"github.com/cwbudde/algo-cheby/dsp/filter/design/chebyshev"
	"github.com/cwbudde/algo-cheby/dsp/filter/response"
	"github.com/cwbudde/algo-cheby/dsp/signal"
	"github.com/cwbudde/algo-cheby/measure/tone"
)

// ToneReport compares one test tone before and after filtering.
type ToneReport struct {
	Frequency       float64
	InputAmplitude  float64
	OutputAmplitude float64
	// Ratio is OutputAmplitude / InputAmplitude.
	Ratio         float64
	AttenuationDB float64
}

// Report collects every artifact of an evaluation run.
type Report struct {
	Design     *chebyshev.Result
	Response   response.FrequencyResponse
	GroupDelay response.GroupDelay
	Input      signal.Signal
	Output     signal.Signal
	Tones      []ToneReport
}

// Run designs the filter described by spec and evaluates it.
func Run(spec chebyshev.Spec, family chebyshev.Family, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	design, err := chebyshev.Design(spec, family)
	if err != nil {
		return nil, err
	}

	resp, err := response.AnalogResponse(design.AnalogTF,
		response.WithPoints(cfg.responsePoints),
		response.WithRoots(design.Analog.Zeros, design.Analog.Poles))
	if err != nil {
		return nil, fmt.Errorf("evaluate: analog response: %w", err)
	}

	gd, err := response.SOSGroupDelay(design.Sections, response.WithPoints(cfg.delayPoints))
	if err != nil {
		return nil, fmt.Errorf("evaluate: group delay: %w", err)
	}

	gen := signal.NewGenerator(core.WithSampleRate(spec.SampleRate))

	n, err := gen.SamplesFor(cfg.duration)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	in, err := gen.Tones(n, cfg.tones...)
	if err != nil {
		return nil, fmt.Errorf("evaluate: test signal: %w", err)
	}

	filtered, err := biquad.Filter(design.Sections, in.Samples)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	out := signal.Signal{Time: slices.Clone(in.Time), Samples: filtered, SampleRate: in.SampleRate}

	tones, err := measureTones(in, out, cfg)
	if err != nil {
		return nil, err
	}

	return &Report{
		Design:     design,
		Response:   resp,
		GroupDelay: gd,
		Input:      in,
		Output:     out,
		Tones:      tones,
	}, nil
}

func measureTones(in, out signal.Signal, cfg config) ([]ToneReport, error) {
	skip := int(math.Round(float64(in.Len()) * cfg.settle))
	inTail := in.Samples[skip:]
	outTail := out.Samples[skip:]

	reports := make([]ToneReport, 0, len(cfg.tones))

	for _, f := range cfg.tones {
		ain, err := tone.Amplitude(inTail, f, in.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("evaluate: input tone %g Hz: %w", f, err)
		}

		aout, err := tone.Amplitude(outTail, f, in.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("evaluate: output tone %g Hz: %w", f, err)
		}

		ratio := 0.0
		if ain > 0 {
			ratio = aout / ain
		}

		reports = append(reports, ToneReport{
			Frequency:       f,
			InputAmplitude:  ain,
			OutputAmplitude: aout,
			Ratio:           ratio,
			AttenuationDB:   core.LinearToDB(ratio),
		})
	}

	return reports, nil
}
