// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/ik5/pcmgen/audio"
)

// Generate renders p with the rule for p.Kind. rng is only used by WhiteNoise.
func Generate(p Params, rng RandomSource) ([]int16, error) {
	switch p.Kind {
	case Sine:
		return GenerateSine(p)
	case WhiteNoise:
		return GenerateWhiteNoise(p, rng)
	default:
		return nil, Validate(p)
	}
}

// SingleCycle renders one period of a sine tone, floor(SampleRate/Frequency)
// samples, computed exactly as GenerateSine computes its first samples.
// Duration is ignored.
func SingleCycle(p Params) ([]int16, error) {
	if p.Kind != Sine {
		return nil, fmt.Errorf("%w: single cycle requires a sine wave, got %s", audio.ErrUnsupportedOperation, p.Kind)
	}
	if err := ValidateCycle(p); err != nil {
		return nil, err
	}

	n := p.CycleLength()
	if n == 0 {
		return nil, fmt.Errorf("%w: %g Hz is above the %d Hz sample rate", audio.ErrUnrepresentableCycle, p.Frequency, p.SampleRate)
	}

	return sineSamples(p, n), nil
}
