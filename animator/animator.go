// SPDX-License-Identifier: EPL-2.0

package animator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/audanim/audio"
	"github.com/ik5/audanim/curve"
	"github.com/ik5/audanim/envelope"
	"github.com/ik5/audanim/wobble"
)

// Option customizes an Animator.
type Option func(*Animator)

// WithLogger sets the logger. Nil keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithSynthesizer sets the source of wobble vectors, mostly to seed it.
func WithSynthesizer(s *wobble.Synthesizer) Option {
	return func(a *Animator) {
		if s != nil {
			a.wobble = s
		}
	}
}

// Animator turns decoded audio into keyframed properties on store targets.
type Animator struct {
	cfg    Config
	store  curve.Store
	logger *slog.Logger
	wobble *wobble.Synthesizer
}

// New validates cfg and returns an Animator writing into store.
func New(cfg Config, store curve.Store, opts ...Option) (*Animator, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &Animator{
		cfg:    cfg,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.wobble == nil {
		a.wobble = wobble.New(nil)
	}

	return a, nil
}

// Config returns the configuration the Animator was built with.
func (a *Animator) Config() Config {
	return a.cfg
}

// Run animates every channel of buf that has a bound target.
//
// Validation happens before anything is written: a rejected buffer
// returns a Result in the Rejected state and leaves the store untouched.
// After validation each channel is processed on its own. A failing
// channel does not stop the others; its error is kept in the matching
// ChannelResult and all of them are joined into the returned error.
func (a *Animator) Run(buf *audio.Buffer) (*Result, error) {
	res := &Result{State: Validating}

	if err := a.validate(buf); err != nil {
		res.State = Rejected
		a.logger.Warn("audio rejected", slog.String("state", res.State.String()), slog.Any("error", err))
		return res, err
	}

	res.State = Processing
	a.logger.Debug("animating",
		slog.Int("channels", buf.Channels),
		slog.Int("sample_rate", buf.SampleRate),
		slog.Int("frames", buf.Frames()),
		slog.Bool("preprocess", a.cfg.Preprocess),
	)

	res.Channels = make([]ChannelResult, 0, buf.Channels)
	for i := range buf.Channels {
		res.Channels = append(res.Channels, a.animateChannel(buf, i))
	}

	res.State = Done
	err := res.Err()
	a.logger.Debug("run finished", slog.String("state", res.State.String()), slog.Bool("failed", err != nil))
	return res, err
}

func (a *Animator) validate(buf *audio.Buffer) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if buf.Channels < 1 || buf.Channels > MaxChannels {
		return fmt.Errorf("%w: got %d", ErrUnsupportedChannelLayout, buf.Channels)
	}

	_, err := envelope.BracketSize(buf.SampleRate, a.cfg.FrameRate, a.cfg.KeyframesPerFrame)
	if errors.Is(err, envelope.ErrInvalidBracketSize) {
		return fmt.Errorf("%w: %d Hz at %d fps with %d keyframes per frame",
			ErrInsufficientResolution, buf.SampleRate, a.cfg.FrameRate, a.cfg.KeyframesPerFrame)
	}
	return err
}

func (a *Animator) animateChannel(buf *audio.Buffer, index int) ChannelResult {
	binding := a.cfg.Bindings[index]
	suffix := Suffixes[index]
	res := ChannelResult{Index: index, Suffix: suffix, Target: binding.Target}
	log := a.logger.With(slog.String("channel", suffix))

	if binding.Target == "" {
		res.Skipped = true
		log.Debug("no target bound, skipping")
		return res
	}

	fail := func(stage Stage, err error) ChannelResult {
		res.Err = &ChannelError{
			Channel: index,
			Suffix:  suffix,
			Target:  binding.Target,
			Stage:   stage,
			Cause:   err,
		}
		log.Error("channel failed", slog.String("stage", string(stage)), slog.Any("error", err))
		return res
	}

	target, err := a.resolve(binding.Target)
	if err != nil {
		return fail(StageResolve, err)
	}

	signal, err := buf.Channel(index)
	if err != nil {
		return fail(StageExtract, err)
	}

	track, err := a.track(log, signal, buf.SampleRate)
	if err != nil {
		return fail(StageProcess, err)
	}

	scalar, vector := binding.PropertyNames(suffix)
	res.ScalarProperty = scalar

	values := track
	if binding.Range != nil {
		values = binding.Range.ApplyAll(track)
	}

	err = curve.EmitScalar(target, scalar, values, a.cfg.KeyframesPerFrame, a.cfg.StartOffset)
	if err != nil {
		return fail(StageEmit, err)
	}
	res.Keyframes = len(values)

	if vector != "" {
		res.VectorProperty = vector
		vectors := a.wobble.Synthesize(everyNth(track, a.cfg.KeyframesPerFrame))
		if err := curve.EmitVector(target, vector, vectors, a.cfg.StartOffset); err != nil {
			return fail(StageEmit, err)
		}
		res.Vectors = len(vectors)
	}

	log.Info("channel animated",
		slog.String("target", binding.Target),
		slog.String("property", scalar),
		slog.Int("keyframes", res.Keyframes),
		slog.Int("vectors", res.Vectors),
	)

	return res
}

func (a *Animator) resolve(id string) (curve.Target, error) {
	target, err := a.store.Lookup(id)
	if err != nil {
		if errors.Is(err, curve.ErrUnboundTarget) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %q: %w", curve.ErrUnboundTarget, id, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %q", curve.ErrUnboundTarget, id)
	}
	return target, nil
}

// track is the normalized scalar track of one channel, before any range
// mapping.
func (a *Animator) track(log *slog.Logger, signal []int16, sampleRate int) ([]float64, error) {
	if a.cfg.Preprocess {
		bracket, err := envelope.BracketSize(sampleRate, a.cfg.FrameRate, a.cfg.KeyframesPerFrame)
		if err != nil {
			return nil, err
		}
		log.Debug("extracting envelope",
			slog.Int("bracket", bracket),
			slog.String("strategy", envelope.StrategyFor(a.cfg.Bias).String()),
		)
		return envelope.Process(signal, sampleRate, a.cfg.FrameRate, a.cfg.KeyframesPerFrame, a.cfg.Bias)
	}

	stride, err := envelope.Stride(sampleRate, a.cfg.FrameRate, a.cfg.KeyframesPerFrame)
	if err != nil {
		return nil, err
	}
	log.Debug("decimating", slog.Int("stride", stride))
	return envelope.Decimate(signal, stride)
}

// everyNth returns values[0], values[n], values[2n], ...
func everyNth(values []float64, n int) []float64 {
	if n <= 1 {
		return values
	}

	out := make([]float64, 0, (len(values)+n-1)/n)
	for i := 0; i < len(values); i += n {
		out = append(out, values[i])
	}
	return out
}
