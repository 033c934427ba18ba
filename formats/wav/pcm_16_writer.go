// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/pcmgen/internal/output"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate: the 44-byte header
// followed by the samples, little-endian, with no padding or extra chunks.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	h, err := NewHeader(sampleRate, len(samples))
	if err != nil {
		return err
	}

	header, _ := h.MarshalBinary()
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// 8K samples per write keeps the scratch buffer at 16KB
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing WAV samples: %w", err)
		}
	}

	return nil
}

// WriteFile writes samples to path as a WAV file. Open and write failures
// match audio.ErrIO; nothing is created when the sample count is too large.
func WriteFile(path string, sampleRate int, samples []int16, opts ...output.Option) error {
	if _, err := NewHeader(sampleRate, len(samples)); err != nil {
		return err
	}

	return output.Write(path, func(w io.Writer) error {
		return WriteWAV16(w, sampleRate, samples)
	}, opts...)
}
