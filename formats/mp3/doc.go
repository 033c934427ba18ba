// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files for the import pipeline.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit little-endian stereo. The returned audio.Source normalizes that to
// float32 in [-1, 1]; pair it with audio.NewMonoMixer and audio.NewResampler
// (or pcmgen.ImportMono16) to get a mono table at the rate you need.
//
// Encoding is not supported.
package mp3
