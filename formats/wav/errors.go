// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")

	// ErrDataTooLarge reports a sample count whose byte size does not fit the RIFF size field.
	ErrDataTooLarge = errors.New("sample data exceeds the 4 GiB RIFF limit")

	// ErrInvalidSampleRate reports a rate that is not positive or whose byte rate overflows 32 bits.
	ErrInvalidSampleRate = errors.New("sample rate does not fit the WAV header")
)
