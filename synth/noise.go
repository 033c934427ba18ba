// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math/rand/v2"

	"github.com/ik5/pcmgen/utils"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG source seeded from the runtime's entropy.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededSource returns a reproducible PCG source.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateWhiteNoise renders round(SampleRate*Duration) samples drawn
// uniformly from [-1, 1). A positive Frequency low-passes the noise at that
// cutoff. A nil rng gets a fresh NewRandomSource.
func GenerateWhiteNoise(p Params, rng RandomSource) ([]int16, error) {
	p.Kind = WhiteNoise
	if err := Validate(p); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = NewRandomSource()
	}

	var filter *utils.OnePole
	if p.Frequency > 0 {
		filter = utils.NewOnePole(p.Frequency, float64(p.SampleRate))
	}

	samples := make([]int16, p.SampleCount())
	for i := range samples {
		y := 2*rng.Float64() - 1
		if filter != nil {
			y = filter.Process(y)
		}
		samples[i] = utils.ScaleToInt16(y, p.Amplitude)
	}

	return samples, nil
}
