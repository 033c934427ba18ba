// SPDX-License-Identifier: EPL-2.0

// Package pcmgen renders test tones and noise as 16-bit mono PCM and writes
// them out as WAV, AIFF or C source arrays.
//
// The lower layers are usable on their own:
//
//	synth          parameter validation, sine/noise synthesis, single cycles
//	formats/wav    44-byte header WAV writer, go-audio based reader
//	formats/carray C `int16_t` array literal writer
//	formats/aiff   AIFF writer and reader
//	audio          decoding, resampling and channel mixing pipeline
//
// This package ties them together. Run executes a Job: it validates the
// parameters once, synthesizes once and writes every requested artifact.
//
//	res, err := pcmgen.Run(pcmgen.Job{
//	    Params:    synth.Params{SampleRate: 44100, Frequency: 440, Duration: 1, Amplitude: 0.8},
//	    WAVPath:   "tone.wav",
//	    ArrayPath: "tone_full.c",
//	    ArrayName: "tone",
//	})
//
// ImportMono16 goes the other way: it takes any decoded audio.Source, mixes
// it to mono and resamples it, so an existing recording can be turned into
// a C table.
//
//	src, closer, err := pcmgen.OpenFile(pcmgen.DefaultRegistry(), "clip.mp3")
//	defer closer.Close()
//	pcm, err := pcmgen.ImportMono16(src, 8000, 4096)
package pcmgen
