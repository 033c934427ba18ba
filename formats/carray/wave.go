// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/pcmgen/audio"
	"github.com/ik5/pcmgen/internal/output"
	"github.com/ik5/pcmgen/synth"
)

// WaveLayout builds the comments and trailers for a buffer rendered from p.
// With cycle set the buffer is taken as one sine period and the
// NAME_frequency and NAME_sample_rate constants are added.
func WaveLayout(samples []int16, p synth.Params, name string, cycle bool) (Layout, error) {
	if !ValidIdentifier(name) {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	if cycle && p.Kind != synth.Sine {
		return Layout{}, fmt.Errorf("%w: single-cycle array for %s", audio.ErrUnsupportedOperation, p.Kind)
	}

	rate := strconv.Itoa(p.SampleRate) + " Hz"
	amplitude := FormatReal(p.Amplitude)

	if cycle {
		return Layout{
			Name: name,
			Comments: []string{
				"Generated C array for sine wave data (1 cycle)",
				"Sample rate: " + rate,
				"Frequency: " + FormatReal(p.Frequency) + " Hz",
				"Amplitude: " + amplitude,
				"Samples per cycle: " + strconv.Itoa(len(samples)),
				"Cycle duration: " + FormatReal(1/p.Frequency) + " seconds",
			},
			Trailers: []Constant{
				{Type: "double", Name: name + "_frequency", Value: FormatReal(p.Frequency)},
				{Type: "uint32_t", Name: name + "_sample_rate", Value: strconv.Itoa(p.SampleRate)},
			},
		}, nil
	}

	comments := []string{"Generated C array for sine wave data", "Sample rate: " + rate}
	switch p.Kind {
	case synth.WhiteNoise:
		comments[0] = "Generated C array for white noise data"
		if p.Frequency > 0 {
			comments = append(comments, "Cutoff frequency: "+FormatReal(p.Frequency)+" Hz")
		} else {
			comments = append(comments, "Cutoff frequency: none (full band)")
		}
	default:
		comments = append(comments, "Frequency: "+FormatReal(p.Frequency)+" Hz")
	}
	comments = append(comments,
		"Amplitude: "+amplitude,
		"Duration: "+FormatReal(p.Duration)+" seconds",
		"Total samples: "+strconv.Itoa(len(samples)),
	)

	return Layout{Name: name, Comments: comments}, nil
}

// WriteWave renders samples with the layout from WaveLayout.
func WriteWave(w io.Writer, samples []int16, p synth.Params, name string, cycle bool) error {
	layout, err := WaveLayout(samples, p, name, cycle)
	if err != nil {
		return err
	}

	return Write(w, samples, layout)
}

// WriteFile renders samples to path. Layout errors are reported before the
// file is opened; open and write failures match audio.ErrIO.
func WriteFile(path string, samples []int16, p synth.Params, name string, cycle bool, opts ...output.Option) error {
	layout, err := WaveLayout(samples, p, name, cycle)
	if err != nil {
		return err
	}

	return WriteLayoutFile(path, samples, layout, opts...)
}

// WriteLayoutFile renders samples with an explicit layout to path.
func WriteLayoutFile(path string, samples []int16, layout Layout, opts ...output.Option) error {
	if !ValidIdentifier(layout.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, layout.Name)
	}

	return output.Write(path, func(w io.Writer) error {
		return Write(w, samples, layout)
	}, opts...)
}
