// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads mono 16-bit PCM WAV files.
//
// # Writing
//
// WriteWAV16 emits the canonical layout: a 44-byte header and the samples,
// little-endian, with no extension chunks.
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     1 (mono)
//	24      4     sample rate
//	28      4     sample rate * 2
//	32      2     2 (block align)
//	34      2     16 (bits per sample)
//	36      4     "data"
//	40      4     sample count * 2
//
// WriteFile does the same to a path, truncating any existing file:
//
//	err := wav.WriteFile("tone.wav", 44100, samples)
//	if errors.Is(err, audio.ErrIO) {
//	    // the destination could not be opened or written
//	}
//
// # Reading
//
// ReadHeader parses the header back, which is enough to check a file this
// package produced. Decoder opens arbitrary 16-bit PCM WAV files via
// github.com/go-audio/wav and returns an audio.Source:
//
//	src, err := wav.Decoder{}.Decode(file)
package wav
