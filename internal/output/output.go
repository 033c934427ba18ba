// SPDX-License-Identifier: EPL-2.0

// Package output owns destination files for the serializers: it opens the
// path, buffers writes, and always flushes and closes. Every failure is
// reported as audio.ErrIO. Partially written files are left in place.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/pcmgen/audio"
)

const bufferSize = 64 * 1024

type options struct {
	flags int
	perm  os.FileMode
}

// Option adjusts how the destination is opened.
type Option func(*options)

// NoClobber fails instead of truncating an existing file.
func NoClobber() Option {
	return func(o *options) {
		o.flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
}

// Mode sets the permission bits used when the file is created.
func Mode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// Write opens path and passes a buffered writer to fn. The file is flushed
// and closed on every return path.
func Write(path string, fn func(w io.Writer) error, opts ...Option) (err error) {
	o := options{
		flags: os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
		perm:  0o644,
	}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.OpenFile(path, o.flags, o.perm)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", audio.ErrIO, path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", audio.ErrIO, path, cerr)
		}
	}()

	bw := bufio.NewWriterSize(f, bufferSize)
	if werr := fn(bw); werr != nil {
		// keep whatever made it into the buffer; the caller decides on cleanup
		ferr := bw.Flush()
		return fmt.Errorf("%w: writing %s: %w", audio.ErrIO, path, errors.Join(werr, ferr))
	}

	if ferr := bw.Flush(); ferr != nil {
		return fmt.Errorf("%w: flushing %s: %w", audio.ErrIO, path, ferr)
	}

	return nil
}

// WriteSeeker opens path for encoders that patch headers after writing, such
// as the go-audio encoders. The file is closed on every return path.
func WriteSeeker(path string, fn func(ws io.WriteSeeker) error, opts ...Option) (err error) {
	o := options{
		flags: os.O_RDWR | os.O_CREATE | os.O_TRUNC,
		perm:  0o644,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.flags&os.O_EXCL != 0 {
		o.flags = os.O_RDWR | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, o.flags, o.perm)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", audio.ErrIO, path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", audio.ErrIO, path, cerr)
		}
	}()

	if werr := fn(f); werr != nil {
		return fmt.Errorf("%w: writing %s: %w", audio.ErrIO, path, werr)
	}

	return nil
}
