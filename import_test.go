// SPDX-License-Identifier: EPL-2.0

package pcmgen

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/ik5/pcmgen/audio"
	"github.com/ik5/pcmgen/formats/wav"
	"github.com/ik5/pcmgen/internal/audiotest"
	"github.com/ik5/pcmgen/synth"
)

func TestImportMono16_Downsample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	pcm16, err := ImportMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}

	want := 8000
	if math.Abs(float64(len(pcm16)-want)) > 2 {
		t.Errorf("ImportMono16() got %d samples, want ≈%d", len(pcm16), want)
	}
}

func TestImportMono16_Constant(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 1, 16000, 0.5)

	pcm16, err := ImportMono16(src, 8000, 1024)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}

	// skip the filter warm-up at the start
	for i, s := range pcm16[100:] {
		if math.Abs(float64(s)-16384) > 200 {
			t.Fatalf("pcm16[%d] = %d, want ≈16384", i+100, s)
		}
	}
}

func TestImportMono16_Silence(t *testing.T) {
	t.Parallel()

	pcm16, err := ImportMono16(audiotest.NewSilentSource(44100, 2, 44100), 8000, 4096)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}

	for i, s := range pcm16 {
		if s != 0 {
			t.Fatalf("pcm16[%d] = %d, want 0", i, s)
		}
	}
}

func TestImportMono16_Empty(t *testing.T) {
	t.Parallel()

	pcm16, err := ImportMono16(audiotest.NewSilentSource(44100, 2, 0), 8000, 4096)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}
	if len(pcm16) != 0 {
		t.Errorf("ImportMono16() got %d samples, want 0", len(pcm16))
	}
}

func TestImportMono16_SameRate(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 500, 0.25)

	pcm16, err := ImportMono16(src, 8000, 64)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}
	if len(pcm16) != 500 {
		t.Errorf("ImportMono16() got %d samples, want 500", len(pcm16))
	}
}

func TestImportMono16_SameRateIsLossless(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 32767, -32768, 1, -1, 12345, -23456, 999}

	data := new(bytes.Buffer)
	if err := wav.WriteWAV16(data, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	src, err := wav.Decoder{}.Decode(bytes.NewReader(data.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := ImportMono16(src, 8000, 3)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("ImportMono16() got %d samples, want %d", len(got), len(samples))
	}
	for i, want := range samples {
		if got[i] != want {
			t.Errorf("pcm16[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestImportMono16_InvalidArgs(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)

	if _, err := ImportMono16(src, 0, 64); !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("ImportMono16(rate=0) error = %v, want %v", err, audio.ErrInvalidParameter)
	}
	if _, err := ImportMono16(src, 8000, 0); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ImportMono16(buf=0) error = %v, want %v", err, audio.ErrInvalidDstSize)
	}
}

func TestOpenFile_GeneratedWAV(t *testing.T) {
	t.Parallel()

	p := synth.Params{SampleRate: 16000, Frequency: 1000, Duration: 0.5, Amplitude: 0.5}
	samples, err := synth.GenerateSine(p)
	if err != nil {
		t.Fatalf("GenerateSine() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := wav.WriteFile(path, p.SampleRate, samples); err != nil {
		t.Fatalf("wav.WriteFile() error = %v", err)
	}

	src, closer, err := OpenFile(DefaultRegistry(), path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer closer.Close()

	pcm16, err := ImportMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ImportMono16() error = %v", err)
	}
	if len(pcm16) != 4000 {
		t.Errorf("ImportMono16() got %d samples, want 4000", len(pcm16))
	}
}

func TestOpenFile_Errors(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	if _, _, err := OpenFile(reg, "clip.flac"); !errors.Is(err, audio.ErrUnsupportedOperation) {
		t.Errorf("OpenFile(flac) error = %v, want %v", err, audio.ErrUnsupportedOperation)
	}

	missing := filepath.Join(t.TempDir(), "missing.wav")
	if _, _, err := OpenFile(reg, missing); !errors.Is(err, audio.ErrIO) {
		t.Errorf("OpenFile(missing) error = %v, want %v", err, audio.ErrIO)
	}
}

func TestDefaultRegistry_Formats(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{"wav", "WAVE", ".aif", "aiff", "mp3", "ogg", "oga"} {
		if _, ok := DefaultRegistry().Get(ext); !ok {
			t.Errorf("DefaultRegistry().Get(%q) not found", ext)
		}
	}
}
