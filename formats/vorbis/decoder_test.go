// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	rate, channels int
	data           []float32
	err            error
}

func (f *fakeStream) SampleRate() int { return f.rate }
func (f *fakeStream) Channels() int   { return f.channels }

func (f *fakeStream) Read(p []float32) (int, error) {
	if len(f.data) == 0 {
		if f.err != nil {
			return 0, f.err
		}
		return 0, io.EOF
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestSource_WholeFrames(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeStream{rate: 48000, channels: 2, data: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}})
	assert.Equal(t, 48000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, buf[:n])

	n, err = src.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.6}, buf[:n])

	n, err = src.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_TooSmallBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeStream{rate: 8000, channels: 2, data: []float32{1, 1}})
	n, err := src.ReadSamples(make([]float32, 1))
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_DecodeError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src := newSource(&fakeStream{rate: 8000, channels: 1, err: boom})

	_, err := src.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, boom)
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("OggS but not really")))
	assert.ErrorIs(t, err, ErrNotVorbisStream)
}
