// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/pcmgen/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves channel count.
// When downsampling, each channel is fed through a one-pole low-pass with
// its cutoff at the destination Nyquist frequency.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	filled [4]bool
	primed bool

	pos    float64
	srcBuf []float32
	eof    bool

	filters []*utils.OnePole
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	srcRate := float64(src.SampleRate())

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    srcRate / float64(dstRate),
		channels: channels,
		srcBuf:   make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	if r.ratio > 1.0 {
		r.filters = make([]*utils.OnePole, channels)
		for c := range r.filters {
			r.filters[c] = utils.NewOnePole(float64(dstRate)/2, srcRate)
		}
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame pulls one frame from src into dst, filtering when downsampling.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	got := n > 0
	if got {
		copy(dst, r.srcBuf[:n])
		for c, f := range r.filters {
			dst[c] = float32(f.Process(float64(dst[c])))
		}
	}

	// decoders signal exhaustion either way
	if err == io.EOF || (!got && err == nil) {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("reading source frame: %w", err)
	}

	return got, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	got, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !got {
		return io.EOF
	}

	// seed filter history with the first frame to avoid a fade-in
	for c, f := range r.filters {
		f.Reset(float64(r.srcBuf[c]))
		r.window[1][c] = r.srcBuf[c]
	}

	// there is no frame before the first one; hold it
	copy(r.window[0], r.window[1])
	r.filled[0], r.filled[1] = true, true

	for i := 2; i < len(r.window); i++ {
		if r.eof {
			break
		}
		if r.filled[i], err = r.readFrame(r.window[i]); err != nil {
			return err
		}
	}

	return nil
}

// advance shifts the window left by one frame.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]
	r.filled[3] = false

	if !r.filled[1] {
		return io.EOF
	}

	if r.eof || !r.filled[2] {
		return nil
	}

	got, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.filled[3] = got

	return nil
}

// ReadSamples produces samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		for c := range r.channels {
			y0 := r.window[0][c]
			y1 := r.window[1][c]
			y2 := y1
			if r.filled[2] {
				y2 = r.window[2][c]
			}
			y3 := y2
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
