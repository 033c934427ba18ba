// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/aiff"

	"github.com/ik5/pcmgen/internal/output"
)

// WriteAIFF16 writes mono 16-bit PCM samples as an uncompressed AIFF stream.
// The encoder patches chunk sizes on close, so ws must be seekable.
func WriteAIFF16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := aiff.NewEncoder(ws, sampleRate, 16, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding aiff: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}

	return nil
}

// WriteFile writes samples to path as AIFF. Failures match audio.ErrIO.
func WriteFile(path string, sampleRate int, samples []int16, opts ...output.Option) error {
	return output.WriteSeeker(path, func(ws io.WriteSeeker) error {
		return WriteAIFF16(ws, sampleRate, samples)
	}, opts...)
}
