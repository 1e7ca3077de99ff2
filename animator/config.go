// SPDX-License-Identifier: EPL-2.0

package animator

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/audanim/envelope"
)

// MaxKeyframesPerFrame bounds Config.KeyframesPerFrame.
const MaxKeyframesPerFrame = 48000

// MaxFrameRate bounds Config.FrameRate.
const MaxFrameRate = 1000

// MaxChannels is the number of output channels: left, right and sub.
const MaxChannels = 3

// Suffixes name the output channels in default property names.
var Suffixes = [MaxChannels]string{"L", "R", "S"}

// Binding tells the animator where one output channel is written.
type Binding struct {
	// Target is the id resolved through the store. Empty skips the channel.
	Target string `json:"target"`
	// Property is "scalar" or "scalar,vector". Empty means
	// "Driver_<suffix>,Wobble_<suffix>".
	Property string `json:"property"`
	// Range rescales the scalar track. Nil leaves it in [-1, 1].
	Range *envelope.Range `json:"range,omitempty"`
}

// PropertyNames splits Property into the scalar and vector property
// names. vector is empty when no vector track is wanted.
func (b Binding) PropertyNames(suffix string) (scalar, vector string) {
	if strings.TrimSpace(b.Property) == "" {
		return "Driver_" + suffix, "Wobble_" + suffix
	}

	parts := strings.Split(b.Property, ",")
	scalar = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		vector = strings.TrimSpace(parts[1])
	}
	return scalar, vector
}

// Config holds the timing and binding parameters of one animation pass.
type Config struct {
	// FrameRate of the host timeline in frames per second.
	FrameRate int `json:"frame_rate"`
	// KeyframesPerFrame is how many scalar keyframes land in one frame.
	KeyframesPerFrame int `json:"keyframes_per_frame"`
	// StartOffset is the frame of the first keyframe.
	StartOffset float64 `json:"start_offset"`
	// Preprocess selects envelope extraction instead of plain decimation.
	Preprocess bool `json:"preprocess"`
	// Bias blends average (0) and peak (1) envelopes. Only used when
	// Preprocess is set.
	Bias float64 `json:"bias"`
	// Bindings for the left, right and sub channels, in that order.
	Bindings [MaxChannels]Binding `json:"bindings"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		FrameRate:         24,
		KeyframesPerFrame: 2,
		StartOffset:       1,
		Preprocess:        false,
		Bias:              0.5,
	}
}

func (c Config) Validate() error {
	if c.FrameRate < 1 || c.FrameRate > MaxFrameRate {
		return ErrInvalidFrameRate
	}
	if c.KeyframesPerFrame < 1 || c.KeyframesPerFrame > MaxKeyframesPerFrame {
		return ErrInvalidKeyframes
	}
	if math.IsNaN(c.StartOffset) || math.IsInf(c.StartOffset, 0) {
		return ErrInvalidOffset
	}
	if math.IsNaN(c.Bias) || c.Bias < 0 || c.Bias > 1 {
		return envelope.ErrInvalidBias
	}

	for i, b := range c.Bindings {
		if b.Range == nil {
			continue
		}
		if err := b.Range.Validate(); err != nil {
			return fmt.Errorf("binding %s: %w", Suffixes[i], err)
		}
	}

	return nil
}
