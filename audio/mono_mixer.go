// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// MonoMixer downmixes interleaved multi-channel audio by averaging channels.
// Sources may return reads that end mid-frame; leftover samples are kept
// until the rest of the frame arrives so channels never shift.
type MonoMixer struct {
	src     Source
	tmp     []float32
	pending int   // buffered samples at the start of tmp
	srcErr  error // sticky error from src, reported once pending is drained
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixer source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples; one value per source frame.
// A partial frame left at the end of the stream is dropped.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	// one spare frame of room so a split frame can always be completed
	need := max((len(dst)+1)*channels, m.pending+channels)
	if cap(m.tmp) < need {
		grown := make([]float32, max(need, 8192))
		copy(grown, m.tmp[:m.pending])
		m.tmp = grown
	}
	m.tmp = m.tmp[:need]

	total := m.pending
	err := m.srcErr
	for total < channels && err == nil {
		var n int
		n, err = m.src.ReadSamples(m.tmp[total:need])
		total += n
		if n == 0 && err == nil {
			err = io.EOF
		}
	}
	m.srcErr = err

	frames := min(total/channels, len(dst))
	if channels == 2 {
		for f := range frames {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
	} else {
		inv := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for _, v := range m.tmp[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}

	m.pending = copy(m.tmp, m.tmp[frames*channels:total])
	if m.pending >= channels {
		// whole frames are still buffered; hold the error back
		return frames, nil
	}

	return frames, err
}
