// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the FORM/AIFF signature is missing.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for sample sizes other than 16.
	ErrOnlyPCM16bitSupported = errors.New("aiff: only 16-bit samples are supported")

	// ErrUnsupportedAiffLayout is returned when the COMM chunk has no usable
	// rate or channel count.
	ErrUnsupportedAiffLayout = errors.New("aiff: unsupported COMM layout")
)
