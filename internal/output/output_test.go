// SPDX-License-Identifier: EPL-2.0

package output

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/pcmgen/audio"
)

func TestWrite_CreatesAndFlushes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	err := Write(path, func(w io.Writer) error {
		_, err := w.Write([]byte("RIFF"))
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data))
}

func TestWrite_Truncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, os.WriteFile(path, []byte("previous content"), 0o644))

	require.NoError(t, Write(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWrite_OpenFailure(t *testing.T) {
	t.Parallel()

	called := false
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.bin")
	err := Write(path, func(io.Writer) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, audio.ErrIO)
	assert.False(t, called, "fn must not run when the destination cannot be opened")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWrite_NoClobber(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	err := Write(path, func(io.Writer) error { return nil }, NoClobber())
	assert.ErrorIs(t, err, audio.ErrIO)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestWrite_CallbackFailureKeepsPartialFile(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	path := filepath.Join(t.TempDir(), "out.bin")
	err := Write(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, "partial"); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, audio.ErrIO)
	assert.ErrorIs(t, err, boom)

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "partial", string(data))
}

func TestWriteSeeker_Seeks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	err := WriteSeeker(path, func(ws io.WriteSeeker) error {
		if _, err := io.WriteString(ws, "xxxxBODY"); err != nil {
			return err
		}
		if _, err := ws.Seek(0, io.SeekStart); err != nil {
			return err
		}
		_, err := io.WriteString(ws, "HEAD")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "HEADBODY", string(data))
}
