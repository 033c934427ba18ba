// SPDX-License-Identifier: EPL-2.0

// Package synth renders mono 16-bit PCM test signals.
//
// Two waveform kinds are supported: a sine tone and uniform white noise with
// an optional single-pole low-pass. Every sample is computed in float64 and
// converted to int16 by truncation toward zero:
//
//	sample = int16(value * amplitude * 32767)
//
// No clamping is done past the amplitude scaling; both generators keep
// |value| <= 1 by construction.
//
// # Parameters
//
// A Params value describes one render:
//
//	p := synth.Params{
//	    SampleRate: 44100,
//	    Frequency:  440,
//	    Duration:   1.0,
//	    Amplitude:  0.8,
//	    Kind:       synth.Sine,
//	}
//
//	if err := synth.Validate(p); err != nil {
//	    // errors.Is(err, audio.ErrInvalidParameter)
//	}
//
// For WhiteNoise, Frequency is the low-pass cutoff in Hz; 0 leaves the noise
// unfiltered, otherwise it must stay strictly below SampleRate/2.
//
// # Rendering
//
//	samples, err := synth.Generate(p, nil)     // round(SampleRate*Duration) samples
//	cycle, err := synth.SingleCycle(p)         // floor(SampleRate/Frequency) samples, sine only
//
// Sine output is deterministic. White noise draws from a RandomSource; pass
// nil for a freshly seeded source per call, or a fixed source in tests.
package synth
