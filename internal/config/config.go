// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"strconv"

	"github.com/ik5/audanim/animator"
)

// Config holds the CLI defaults, loaded from environment variables.
// Command line flags override every field.
type Config struct {
	// Animator starts from animator.DefaultConfig.
	Animator animator.Config

	// Seed for the wobble generator. Zero picks a random seed.
	Seed uint64

	// Verbose turns on debug logging.
	Verbose bool
}

// Load reads configuration from environment variables, falling back to
// library defaults for anything unset or unparsable.
func Load() Config {
	def := animator.DefaultConfig()

	cfg := def
	cfg.FrameRate = envInt("AUDANIM_FPS", def.FrameRate)
	cfg.KeyframesPerFrame = envInt("AUDANIM_KEYFRAMES", def.KeyframesPerFrame)
	cfg.StartOffset = envFloat("AUDANIM_OFFSET", def.StartOffset)
	cfg.Bias = envFloat("AUDANIM_BIAS", def.Bias)
	cfg.Preprocess = envBool("AUDANIM_PREPROCESS", def.Preprocess)

	return Config{
		Animator: cfg,
		Seed:     envUint("AUDANIM_SEED", 0),
		Verbose:  envBool("AUDANIM_VERBOSE", false),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
