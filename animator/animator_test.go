// SPDX-License-Identifier: EPL-2.0

package animator

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/audanim/audio"
	"github.com/ik5/audanim/curve"
	"github.com/ik5/audanim/envelope"
	"github.com/ik5/audanim/internal/audiotest"
	"github.com/ik5/audanim/utils"
	"github.com/ik5/audanim/wobble"
)

const epsilon = 1e-9

func stereoConfig() Config {
	cfg := DefaultConfig()
	cfg.FrameRate = 25
	cfg.KeyframesPerFrame = 2
	cfg.Preprocess = true
	cfg.Bindings[0].Target = "Left"
	cfg.Bindings[1].Target = "Right"
	return cfg
}

func mustNew(t *testing.T, cfg Config, store curve.Store, opts ...Option) *Animator {
	t.Helper()

	a, err := New(cfg, store, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func object(t *testing.T, scene *curve.Scene, id string) *curve.Object {
	t.Helper()

	o, ok := scene.Object(id)
	if !ok {
		t.Fatalf("object %q not in scene", id)
	}
	return o
}

func TestRun_StereoEnvelope(t *testing.T) {
	t.Parallel()

	// 4000 interleaved samples, 2000 per channel; 8000 / (25 * 2) = 160
	// samples per bracket gives 12 whole windows.
	buf := audiotest.NewChannelMarkedBuffer(8000, 2000, 16384, -8192)
	scene := curve.NewScene("Left", "Right")
	a := mustNew(t, stereoConfig(), scene, WithSynthesizer(wobble.NewSeeded(1)))

	res, err := a.Run(buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.State != Done {
		t.Errorf("State = %v, want done", res.State)
	}
	if len(res.Channels) != 2 {
		t.Fatalf("len(Channels) = %d, want 2", len(res.Channels))
	}

	tests := []struct {
		id     string
		suffix string
		mark   int16
	}{
		{"Left", "L", 16384},
		{"Right", "R", -8192},
	}

	for i, tt := range tests {
		ch := res.Channels[i]
		if ch.Keyframes != 12 || ch.Vectors != 6 {
			t.Errorf("%s: keyframes = %d, vectors = %d, want 12 and 6", tt.suffix, ch.Keyframes, ch.Vectors)
		}

		obj := object(t, scene, tt.id)
		track := obj.Track("Driver_" + tt.suffix)
		if len(track) != 12 {
			t.Fatalf("%s: len(track) = %d, want 12", tt.suffix, len(track))
		}

		want := float64(tt.mark) / utils.PCM16Scale
		for k, cp := range track {
			if cp.Frame != 1+float64(k)/2 {
				t.Errorf("%s: track[%d].Frame = %v, want %v", tt.suffix, k, cp.Frame, 1+float64(k)/2)
			}
			if math.Abs(cp.Value.(float64)-want) > epsilon {
				t.Errorf("%s: track[%d].Value = %v, want %v", tt.suffix, k, cp.Value, want)
			}
		}

		vectors := obj.Track("Wobble_" + tt.suffix)
		if len(vectors) != 6 {
			t.Fatalf("%s: len(vectors) = %d, want 6", tt.suffix, len(vectors))
		}
		for k, cp := range vectors {
			if cp.Frame != float64(1+k) {
				t.Errorf("%s: vectors[%d].Frame = %v, want %d", tt.suffix, k, cp.Frame, 1+k)
			}
			for _, c := range cp.Value.(curve.Vector) {
				if math.Abs(c) > math.Abs(want)+epsilon {
					t.Errorf("%s: vector component %v exceeds envelope %v", tt.suffix, c, want)
				}
			}
		}
	}
}

func TestRun_Decimation(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBuffer(8000, 1, 2000, func(frame, channel int) int16 {
		return int16(frame)
	})
	cfg := stereoConfig()
	cfg.Preprocess = false
	cfg.Bindings[0].Property = "Scale"
	scene := curve.NewScene("Left", "Right")

	res, err := mustNew(t, cfg, scene).Run(buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// stride 160 over 2000 samples keeps 0, 160, ..., 1920
	track := object(t, scene, "Left").Track("Scale")
	if len(track) != 13 {
		t.Fatalf("len(track) = %d, want 13", len(track))
	}
	for k, cp := range track {
		want := utils.Int16ToFloat64(int16(k * 160))
		if cp.Value.(float64) != want {
			t.Errorf("track[%d] = %v, want %v", k, cp.Value, want)
		}
	}

	if res.Channels[0].VectorProperty != "" || res.Channels[0].Vectors != 0 {
		t.Errorf("scalar-only property still wrote vectors: %+v", res.Channels[0])
	}
	if len(res.Channels) != 1 {
		t.Errorf("mono buffer produced %d channel results", len(res.Channels))
	}
	if props := object(t, scene, "Right").Properties(); len(props) != 0 {
		t.Errorf("right target touched by mono input: %v", props)
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewSineBuffer(8000, 2, 4000, 220, 20000)
	cfg := stereoConfig()
	cfg.Bindings[0].Property = "Level"
	cfg.Bindings[1].Property = "Level"

	run := func() []curve.ControlPoint {
		scene := curve.NewScene("Left", "Right")
		if _, err := mustNew(t, cfg, scene).Run(buf); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return append(object(t, scene, "Left").Track("Level"), object(t, scene, "Right").Track("Level")...)
	}

	first, second := run(), run()
	if !slices.Equal(first, second) {
		t.Error("two runs over the same input produced different tracks")
	}
}

func TestRun_SeededVectorsRepeat(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewSineBuffer(8000, 1, 4000, 110, 12000)
	cfg := stereoConfig()

	run := func() []curve.ControlPoint {
		scene := curve.NewScene("Left")
		if _, err := mustNew(t, cfg, scene, WithSynthesizer(wobble.NewSeeded(42))).Run(buf); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return object(t, scene, "Left").Track("Wobble_L")
	}

	if !slices.Equal(run(), run()) {
		t.Error("seeded runs produced different vectors")
	}
}

func TestRun_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *audio.Buffer
		want error
	}{
		{"nil buffer", nil, ErrNilBuffer},
		{"four channels", audiotest.NewSilentBuffer(8000, 4, 100), ErrUnsupportedChannelLayout},
		{"no channels", &audio.Buffer{SampleRate: 8000}, ErrUnsupportedChannelLayout},
		{"rate too low", audiotest.NewConstantBuffer(40, 2, 100, 1000), ErrInsufficientResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scene := curve.NewScene("Left", "Right")
			res, err := mustNew(t, stereoConfig(), scene).Run(tt.buf)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() error = %v, want %v", err, tt.want)
			}
			if res.State != Rejected {
				t.Errorf("State = %v, want rejected", res.State)
			}
			for _, o := range scene.Objects() {
				if props := o.Properties(); len(props) != 0 {
					t.Errorf("%s was written: %v", o.ID(), props)
				}
			}
		})
	}
}

func TestRun_SubUsesOwnBinding(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewChannelMarkedBuffer(8000, 800, 1000, 2000, 3000)
	cfg := stereoConfig()
	cfg.Bindings[2].Target = "Sub"
	cfg.Bindings[2].Property = "Rumble"
	scene := curve.NewScene("Left", "Right", "Sub")

	if _, err := mustNew(t, cfg, scene).Run(buf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	track := object(t, scene, "Sub").Track("Rumble")
	if len(track) == 0 {
		t.Fatal("sub channel wrote nothing")
	}
	if got, want := track[0].Value.(float64), 3000/utils.PCM16Scale; math.Abs(got-want) > epsilon {
		t.Errorf("sub value = %v, want %v", got, want)
	}
	if _, ok := object(t, scene, "Right").Property("Rumble"); ok {
		t.Error("sub binding wrote into the right target")
	}
}

func TestRun_UnboundTargetIsLocal(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewChannelMarkedBuffer(8000, 800, 1000, 2000)
	scene := curve.NewScene("Left")

	res, err := mustNew(t, stereoConfig(), scene).Run(buf)
	if !errors.Is(err, curve.ErrUnboundTarget) {
		t.Fatalf("Run() error = %v, want ErrUnboundTarget", err)
	}
	if res.State != Done {
		t.Errorf("State = %v, want done", res.State)
	}

	var chErr *ChannelError
	if !errors.As(err, &chErr) {
		t.Fatalf("error %v is not a *ChannelError", err)
	}
	if chErr.Suffix != "R" || chErr.Stage != StageResolve {
		t.Errorf("ChannelError = %+v, want R at resolve", chErr)
	}

	if res.Channels[0].Err != nil || res.Channels[0].Keyframes == 0 {
		t.Errorf("left channel did not complete: %+v", res.Channels[0])
	}
	if len(object(t, scene, "Left").Track("Driver_L")) == 0 {
		t.Error("left channel wrote nothing")
	}
}

func TestRun_SkipsUnboundChannel(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewChannelMarkedBuffer(8000, 800, 1000, 2000)
	cfg := stereoConfig()
	cfg.Bindings[1].Target = ""
	scene := curve.NewScene("Left", "Right")

	res, err := mustNew(t, cfg, scene).Run(buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Channels[1].Skipped {
		t.Errorf("right channel not skipped: %+v", res.Channels[1])
	}
	if props := object(t, scene, "Right").Properties(); len(props) != 0 {
		t.Errorf("skipped channel wrote %v", props)
	}
}

func TestRun_Range(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewConstantBuffer(8000, 1, 800, 32767)
	cfg := stereoConfig()
	cfg.Preprocess = false
	cfg.Bindings[0].Range = &envelope.Range{Min: 0, Max: 10}
	scene := curve.NewScene("Left")

	if _, err := mustNew(t, cfg, scene).Run(buf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for k, cp := range object(t, scene, "Left").Track("Driver_L") {
		if math.Abs(cp.Value.(float64)-10) > epsilon {
			t.Errorf("track[%d] = %v, want 10", k, cp.Value)
		}
	}
}

func TestRun_Logs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	buf := audiotest.NewChannelMarkedBuffer(8000, 800, 1000)
	scene := curve.NewScene("Left")
	if _, err := mustNew(t, stereoConfig(), scene, WithLogger(logger)).Run(buf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{"channel animated", "channel=L", "keyframes=5", "vectors=3"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, out.String())
		}
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	if _, err := New(DefaultConfig(), nil); !errors.Is(err, ErrNilStore) {
		t.Errorf("New(nil store) error = %v, want ErrNilStore", err)
	}

	cfg := DefaultConfig()
	cfg.KeyframesPerFrame = 0
	if _, err := New(cfg, curve.NewScene()); !errors.Is(err, ErrInvalidKeyframes) {
		t.Errorf("New(kpf 0) error = %v, want ErrInvalidKeyframes", err)
	}
}

func TestEveryNth(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		n    int
		want []float64
	}{
		{1, values},
		{2, []float64{0, 2, 4, 6}},
		{3, []float64{0, 3, 6}},
		{10, []float64{0}},
	}

	for _, tt := range tests {
		if got := everyNth(values, tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("everyNth(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	buf := audiotest.NewSineBuffer(48000, 2, 48000*10, 440, 16000)
	cfg := stereoConfig()

	for b.Loop() {
		scene := curve.NewScene("Left", "Right")
		a, err := New(cfg, scene, WithSynthesizer(wobble.NewSeeded(7)))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := a.Run(buf); err != nil {
			b.Fatal(err)
		}
	}
}
