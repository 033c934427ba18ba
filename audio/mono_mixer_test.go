// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/pcmgen/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 1, 10, 0.7))
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.7 {
			t.Errorf("buf[%d] = %v, want 0.7", i, buf[i])
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{"stereo", 2, 0.05},
		{"quad", 4, 0.15},
		{"six channels", 6, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_, channel int) float32 {
				return float32(channel) / 10
			})
			mixer := NewMonoMixer(src)
			buf := make([]float32, 20)

			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 20 {
				t.Fatalf("ReadSamples() n = %d, want 20", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if n != 5 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 5, io.EOF", n, err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestMonoMixer_GrowsScratch(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 10000, 0.2))
	buf := make([]float32, 9000)

	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 9000 {
		t.Errorf("ReadSamples() n = %d, want 9000", n)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 1)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 || mixer.SampleRate() != 22050 {
		t.Errorf("mixer format = %d Hz/%d ch, want 22050 Hz/1 ch", mixer.SampleRate(), mixer.Channels())
	}
	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

// raggedSource returns interleaved samples at most step values per read,
// splitting frames across calls. The last read carries io.EOF.
type raggedSource struct {
	channels int
	data     []float32
	step     int
}

func (r *raggedSource) SampleRate() int { return 8000 }
func (r *raggedSource) Channels() int   { return r.channels }
func (r *raggedSource) BufSize() int    { return r.step }
func (r *raggedSource) Close() error    { return nil }

func (r *raggedSource) ReadSamples(dst []float32) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), r.step)], r.data)
	r.data = r.data[n:]
	if len(r.data) == 0 {
		return n, io.EOF
	}
	return n, nil
}

// rampStereo has left = frame/100 and right = 0, so a channel shift shows
// up as a half-step offset in the mix.
func rampStereo(frames int) []float32 {
	data := make([]float32, 2*frames)
	for f := range frames {
		data[2*f] = float32(f) / 100
	}
	return data
}

func drainMixer(t *testing.T, m *MonoMixer, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 10000 {
		n, err := m.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("ReadSamples() never reached io.EOF")
	return nil
}

func TestMonoMixer_SplitFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		step   int
		bufLen int
	}{
		{"odd reads", 3, 4},
		{"single samples", 1, 1},
		{"odd reads into one-frame buffer", 5, 1},
		{"everything at once into small buffer", 1000, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const frames = 50
			m := NewMonoMixer(&raggedSource{channels: 2, data: rampStereo(frames), step: tt.step})

			got := drainMixer(t, m, tt.bufLen)
			if len(got) != frames {
				t.Fatalf("got %d frames, want %d", len(got), frames)
			}
			for f, v := range got {
				want := float32(f) / 200
				if math.Abs(float64(v-want)) > 1e-6 {
					t.Fatalf("mono[%d] = %v, want %v", f, v, want)
				}
			}
		})
	}
}

func TestMonoMixer_DropsTrailingPartialFrame(t *testing.T) {
	t.Parallel()

	data := append(rampStereo(4), 0.9)
	m := NewMonoMixer(&raggedSource{channels: 2, data: data, step: 3})

	if got := drainMixer(t, m, 8); len(got) != 4 {
		t.Errorf("got %d frames, want 4", len(got))
	}
}
