// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"math"

	"github.com/ik5/audanim/utils"
)

// Strategy is the window reduction selected by the bias.
type Strategy int

const (
	// Averaged takes the mean absolute amplitude, signed by the net
	// charge (sum of signed samples) of the window.
	Averaged Strategy = iota
	// Peak keeps the first sample with the largest magnitude.
	Peak
	// Blended mixes Peak and Averaged by the bias.
	Blended
)

func (s Strategy) String() string {
	switch s {
	case Averaged:
		return "averaged"
	case Peak:
		return "peak"
	case Blended:
		return "blended"
	default:
		return "unknown"
	}
}

// StrategyFor maps a bias to its strategy: 0 is Averaged, 1 is Peak and
// anything in between is Blended.
func StrategyFor(bias float64) Strategy {
	switch bias {
	case 0:
		return Averaged
	case 1:
		return Peak
	default:
		return Blended
	}
}

func validBias(bias float64) bool {
	return !math.IsNaN(bias) && bias >= 0 && bias <= 1
}

// Reduce collapses one window into a normalized control value.
// An empty window yields 0.
func Reduce(window []int16, bias float64) float64 {
	if len(window) == 0 {
		return 0
	}

	var (
		peak   int16
		sumAbs int64
		charge int64
	)

	for _, s := range window {
		v := int64(s)
		charge += v
		if v < 0 {
			sumAbs -= v
		} else {
			sumAbs += v
		}
		if absInt16(s) > absInt16(peak) {
			peak = s
		}
	}

	average := float64(sumAbs) / float64(len(window))
	if charge < 0 {
		average *= -1.0
	}

	switch StrategyFor(bias) {
	case Averaged:
		return average / utils.PCM16Scale
	case Peak:
		return float64(peak) / utils.PCM16Scale
	default:
		average *= 1.0 - bias
		weighted := float64(peak) * bias
		return (average + weighted) / utils.PCM16Scale
	}
}

// Process splits signal into consecutive windows of BracketSize samples and
// reduces each one. Trailing samples that do not fill a window are dropped,
// so the result has exactly len(signal)/BracketSize values.
func Process(signal []int16, sampleRate, frameRate, keyframesPerFrame int, bias float64) ([]float64, error) {
	if !validBias(bias) {
		return nil, ErrInvalidBias
	}

	bracket, err := BracketSize(sampleRate, frameRate, keyframesPerFrame)
	if err != nil {
		return nil, err
	}

	n := len(signal) / bracket
	out := make([]float64, n)
	for i := range n {
		start := i * bracket
		out[i] = Reduce(signal[start:start+bracket], bias)
	}

	return out, nil
}

func absInt16(s int16) int {
	v := int(s)
	if v < 0 {
		return -v
	}
	return v
}
