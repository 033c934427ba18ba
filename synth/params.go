// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/pcmgen/audio"
)

const (
	// MaxSampleRate keeps the 16-bit mono byte rate inside 32 bits.
	MaxSampleRate = math.MaxUint32 / 2

	// MaxSamples is the longest render a 16-bit mono RIFF data chunk can hold.
	MaxSamples = (math.MaxUint32 - 36) / 2
)

// WaveKind selects the generation rule.
type WaveKind int

const (
	Sine WaveKind = iota
	WhiteNoise
)

func (k WaveKind) String() string {
	switch k {
	case Sine:
		return "sine"
	case WhiteNoise:
		return "white-noise"
	default:
		return fmt.Sprintf("WaveKind(%d)", int(k))
	}
}

// ParseWaveKind accepts "sine", "noise", "white-noise", "white_noise" and
// "whitenoise", case-insensitively.
func ParseWaveKind(s string) (WaveKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin":
		return Sine, nil
	case "noise", "white-noise", "white_noise", "whitenoise":
		return WhiteNoise, nil
	}

	return 0, &ParamError{Field: "kind", Reason: fmt.Sprintf("unknown wave kind %q", s)}
}

// Params describes a single render. It is copied, never shared.
type Params struct {
	SampleRate int     // samples per second
	Frequency  float64 // sine fundamental, or noise cutoff (0 = full band)
	Duration   float64 // seconds; ignored for single-cycle renders
	Amplitude  float64 // fraction of full scale, 0.0 to 1.0
	Kind       WaveKind
}

// Nyquist is half the sample rate.
func (p Params) Nyquist() float64 {
	return float64(p.SampleRate) / 2
}

// SampleCount is the length of a full render, round(SampleRate*Duration).
func (p Params) SampleCount() int {
	return int(math.Round(float64(p.SampleRate) * p.Duration))
}

// CycleLength is the length of a single-cycle render, floor(SampleRate/Frequency).
func (p Params) CycleLength() int {
	if !(p.Frequency > 0) {
		return 0
	}
	return int(math.Floor(float64(p.SampleRate) / p.Frequency))
}

// ParamError names the field that failed validation.
// It matches audio.ErrInvalidParameter with errors.Is.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", audio.ErrInvalidParameter, e.Reason)
}

func (e *ParamError) Unwrap() error { return audio.ErrInvalidParameter }

// Validate checks p for a full render.
func Validate(p Params) error {
	if err := validateCommon(p); err != nil {
		return err
	}

	if !(p.Duration > 0) || math.IsInf(p.Duration, 1) {
		return &ParamError{Field: "duration", Reason: "duration must be a finite value greater than 0"}
	}
	if math.Round(float64(p.SampleRate)*p.Duration) > MaxSamples {
		return &ParamError{
			Field:  "duration",
			Reason: fmt.Sprintf("%g seconds at %d Hz exceeds %d samples", p.Duration, p.SampleRate, int64(MaxSamples)),
		}
	}

	return nil
}

// ValidateCycle checks p for a single-cycle render, where Duration is unused.
func ValidateCycle(p Params) error {
	return validateCommon(p)
}

func validateCommon(p Params) error {
	if p.SampleRate <= 0 {
		return &ParamError{Field: "sample_rate", Reason: "sample rate must be greater than 0"}
	}
	if int64(p.SampleRate) > MaxSampleRate {
		return &ParamError{Field: "sample_rate", Reason: fmt.Sprintf("sample rate must not exceed %d Hz", int64(MaxSampleRate))}
	}

	switch p.Kind {
	case Sine:
		if !(p.Frequency > 0) || math.IsInf(p.Frequency, 1) {
			return &ParamError{Field: "frequency", Reason: "frequency must be a finite value greater than 0"}
		}
	case WhiteNoise:
		if !(p.Frequency >= 0) {
			return &ParamError{Field: "frequency", Reason: "cutoff frequency must not be negative"}
		}
		if p.Frequency >= p.Nyquist() {
			return &ParamError{
				Field:  "frequency",
				Reason: fmt.Sprintf("cutoff frequency %g Hz must be below the Nyquist frequency %g Hz", p.Frequency, p.Nyquist()),
			}
		}
	default:
		return &ParamError{Field: "kind", Reason: fmt.Sprintf("unknown wave kind %d", int(p.Kind))}
	}

	if !(p.Amplitude >= 0 && p.Amplitude <= 1) {
		return &ParamError{Field: "amplitude", Reason: "amplitude must be between 0.0 and 1.0"}
	}

	return nil
}
