// SPDX-License-Identifier: EPL-2.0

package pcmgen

import (
	"fmt"
	"io"

	"github.com/ik5/pcmgen/audio"
	"github.com/ik5/pcmgen/utils"
)

// ImportMono16 mixes src down to mono, resamples it to targetRate and
// collects the result as 16-bit PCM. bufferSize is the number of samples
// pulled through the pipeline per read. Samples are scaled back by the same
// 32768 the decoders divide by, so a 16-bit mono file imported at its own
// rate is reproduced exactly.
//
// Mixing happens before resampling so the interpolator only runs once
// per output frame.
func ImportMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: target rate %d", audio.ErrInvalidParameter, targetRate)
	}
	if bufferSize <= 0 {
		return nil, fmt.Errorf("%w: buffer size %d", audio.ErrInvalidDstSize, bufferSize)
	}

	mono := audio.NewMonoMixer(src)
	resampled := audio.NewResampler(mono, targetRate)

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := resampled.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.DecodedToInt16(x))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("importing audio: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm16, nil
}
