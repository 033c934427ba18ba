// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes 16-bit PCM AIFF files.
//
// This package uses github.com/go-audio/aiff for both directions. AIFF
// stores samples big-endian; callers only see int16 values on the way in
// and normalized float32 values (via audio.Source) on the way out.
//
//	err := aiff.WriteFile("tone.aiff", 44100, samples)
//
//	src, err := aiff.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Only 16-bit files are decoded; other depths return ErrOnlyPCM16bitSupported.
package aiff
