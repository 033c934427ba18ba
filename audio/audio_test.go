// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/ik5/pcmgen/internal/audiotest"
)

type namedDecoder struct {
	name string
}

func (d *namedDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &namedDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get(flac) ok = true, want false")
	}
}

func TestRegistry_CaseAndAliases(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	aiffDecoder := &namedDecoder{name: "aiff"}
	registry.Register("AIFF", aiffDecoder, "aif", ".aifc")

	for _, key := range []string{"aiff", "Aiff", ".aif", "AIFC"} {
		got, ok := registry.Get(key)
		if !ok || got != aiffDecoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want aiff decoder", key, got, ok)
		}
	}

	want := []string{"aif", "aifc", "aiff"}
	if got := registry.Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Registry.Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	oggDecoder := &namedDecoder{name: "ogg"}
	registry.Register("ogg", oggDecoder)

	d, format, ok := registry.ForPath("/tmp/Clip.OGG")
	if !ok || d != oggDecoder {
		t.Fatalf("ForPath() = %v, %v; want ogg decoder", d, ok)
	}
	if format != "ogg" {
		t.Errorf("ForPath() format = %q, want \"ogg\"", format)
	}

	if _, format, ok := registry.ForPath("noext"); ok || format != "" {
		t.Errorf("ForPath(noext) = %q, %v; want \"\", false", format, ok)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("wav", &namedDecoder{name: "wav"})
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("wav")
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Registry.Get(wav) ok = false after concurrent registers")
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrInvalidDstSize,
		ErrInvalidParameter,
		ErrUnrepresentableCycle,
		ErrUnsupportedOperation,
		ErrMissingFormat,
		ErrIO,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
