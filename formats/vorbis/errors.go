// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisStream indicates the input is not an Ogg Vorbis stream.
var ErrNotVorbisStream = errors.New("not an Ogg Vorbis stream")
