// SPDX-License-Identifier: EPL-2.0

// Package wobble derives a randomized three component track from a scalar
// envelope. Every component is an independent uniform draw in [-1, 1)
// scaled by the envelope value, so silent passages stay still and loud
// ones shake.
package wobble

import (
	"math/rand/v2"
	"sync"

	"github.com/ik5/audanim/curve"
)

// Synthesizer draws wobble vectors from its own generator.
// It is safe for concurrent use.
type Synthesizer struct {
	rng *rand.Rand
	mtx sync.Mutex
}

// New returns a synthesizer using rng. A nil rng gets a randomly seeded PCG.
func New(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{rng: rng}
}

// NewSeeded returns a synthesizer whose output is reproducible for seed.
func NewSeeded(seed uint64) *Synthesizer {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Synthesize returns one vector per envelope value.
func (s *Synthesizer) Synthesize(envelope []float64) []curve.Vector {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]curve.Vector, len(envelope))
	for i, v := range envelope {
		out[i] = curve.Vector{
			s.uniform() * v,
			s.uniform() * v,
			s.uniform() * v,
		}
	}
	return out
}

func (s *Synthesizer) uniform() float64 {
	return s.rng.Float64()*2 - 1
}
