// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/pcmgen/utils"
)

// GenerateSine renders round(SampleRate*Duration) samples of
// sin(2*pi*Frequency*t). The output depends only on p.
func GenerateSine(p Params) ([]int16, error) {
	p.Kind = Sine
	if err := Validate(p); err != nil {
		return nil, err
	}

	return sineSamples(p, p.SampleCount()), nil
}

func sineSamples(p Params, n int) []int16 {
	samples := make([]int16, n)

	omega := 2 * math.Pi * p.Frequency
	rate := float64(p.SampleRate)
	for i := range samples {
		t := float64(i) / rate
		samples[i] = utils.ScaleToInt16(math.Sin(omega*t), p.Amplitude)
	}

	return samples
}
