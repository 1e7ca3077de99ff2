// SPDX-License-Identifier: EPL-2.0

package audanim

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audanim/animator"
	"github.com/ik5/audanim/audio"
	"github.com/ik5/audanim/curve"
	"github.com/ik5/audanim/formats/wav"
)

func writeWAVFile(t *testing.T, name string, sampleRate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, sampleRate, channels, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	return path
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	for _, format := range []string{"wav", "aif", "aiff"} {
		if _, ok := reg.Get(format); !ok {
			t.Errorf("format %q not registered", format)
		}
	}
	if _, ok := reg.Get("mp3"); ok {
		t.Error("mp3 should not be registered")
	}
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	samples := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	path := writeWAVFile(t, "Stereo.WAV", 8000, 2, samples)

	buf, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if buf.Channels != 2 || buf.SampleRate != 8000 || buf.Frames() != 4 {
		t.Errorf("DecodeFile() = %d ch, %d Hz, %d frames", buf.Channels, buf.SampleRate, buf.Frames())
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := DecodeFile(filepath.Join(dir, "track.mp3")); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("mp3 error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := DecodeFile(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file at all"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeFile(garbage); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("garbage error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestAnimateFile(t *testing.T) {
	t.Parallel()

	// 4000 interleaved samples at 8 kHz, animated at 25 fps with 2
	// keyframes per frame, give 12 envelope values per channel.
	samples := make([]int16, 4000)
	for i := range samples {
		samples[i] = 1000
	}
	path := writeWAVFile(t, "speakers.wav", 8000, 2, samples)

	scene := curve.NewScene("Left", "Right")
	cfg := animator.DefaultConfig()
	cfg.FrameRate = 25
	cfg.Preprocess = true
	cfg.Bindings[0].Target = "Left"
	cfg.Bindings[1].Target = "Right"

	res, err := AnimateFile(path, cfg, scene)
	if err != nil {
		t.Fatalf("AnimateFile() error = %v", err)
	}
	for _, ch := range res.Channels {
		if ch.Keyframes != 12 {
			t.Errorf("%s: keyframes = %d, want 12", ch.Suffix, ch.Keyframes)
		}
	}
}

func TestAnimate_Rejected(t *testing.T) {
	t.Parallel()

	data := new(bytes.Buffer)
	if err := wav.WriteWAV16(data, 8000, 4, make([]int16, 400)); err != nil {
		t.Fatal(err)
	}

	cfg := animator.DefaultConfig()
	cfg.Bindings[0].Target = "Left"
	scene := curve.NewScene("Left")

	res, err := Animate(data, "WAV", cfg, scene)
	if !errors.Is(err, animator.ErrUnsupportedChannelLayout) {
		t.Fatalf("Animate() error = %v, want ErrUnsupportedChannelLayout", err)
	}
	if res.State != animator.Rejected {
		t.Errorf("State = %v, want rejected", res.State)
	}
}
