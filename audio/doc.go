// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming side of pcmgen: the Source interface
// decoders produce, the stages that reshape a stream, and the shared error
// values every other package matches against.
//
// # Sources
//
// A Source yields interleaved float32 samples in [-1, 1]. ReadSamples
// returns io.EOF once the stream is exhausted, possibly together with the
// last samples:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// PCMSource adapts the go-audio wav and aiff decoders to Source.
//
// # Stages
//
// MonoMixer averages channels. Resampler changes the rate with cubic
// interpolation and, when the rate goes down, runs each channel through a
// one-pole low-pass at the new Nyquist frequency first. Same-rate
// resampling passes every frame through, so N frames in give N out.
//
//	mono := audio.NewMonoMixer(src)
//	at8k := audio.NewResampler(mono, 8000)
//
// # Registry
//
// Registry maps file extensions to decoders. ForPath looks a decoder up by
// a file name's extension, case-insensitively.
//
// # Errors
//
// ErrInvalidParameter, ErrUnrepresentableCycle, ErrUnsupportedOperation and
// ErrIO classify failures across the module; use errors.Is.
package audio
