// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32 samples, so the source hands them
// through untouched in whole interleaved frames.
package vorbis
