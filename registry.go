// SPDX-License-Identifier: EPL-2.0

package pcmgen

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/pcmgen/audio"
	"github.com/ik5/pcmgen/formats/aiff"
	"github.com/ik5/pcmgen/formats/mp3"
	"github.com/ik5/pcmgen/formats/vorbis"
	"github.com/ik5/pcmgen/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, "wave")
	reg.Register("aiff", aiff.Decoder{}, "aif")
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{}, "oga")

	return reg
}

// OpenFile picks a decoder by extension and decodes path. The returned
// closer releases both the source and the file.
func OpenFile(reg *audio.Registry, path string) (audio.Source, io.Closer, error) {
	dec, format, ok := reg.ForPath(path)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no decoder for %q", audio.ErrUnsupportedOperation, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %s: %w", audio.ErrIO, path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("decoding %s as %s: %w", path, format, err)
	}

	return src, sourceCloser{src: src, file: f}, nil
}

type sourceCloser struct {
	src  audio.Source
	file *os.File
}

func (c sourceCloser) Close() error {
	srcErr := c.src.Close()
	if err := c.file.Close(); err != nil {
		return err
	}

	return srcErr
}
