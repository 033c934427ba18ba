// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidParameter reports a parameter set that violates a generation invariant.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnrepresentableCycle reports a single-cycle request whose cycle is shorter than one sample.
	ErrUnrepresentableCycle = errors.New("cycle cannot be represented at this sample rate")

	// ErrUnsupportedOperation reports an operation that the waveform kind does not support.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMissingFormat reports a decoder that could not describe its PCM stream.
	ErrMissingFormat = errors.New("decoder did not report a PCM format")

	// ErrIO reports a destination that could not be opened or written.
	ErrIO = errors.New("i/o failure")
)
