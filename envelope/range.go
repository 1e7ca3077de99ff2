// SPDX-License-Identifier: EPL-2.0

package envelope

import "math"

// Range maps normalized values in [-1, 1] onto [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultRange is the identity mapping.
var DefaultRange = Range{Min: -1, Max: 1}

func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
		return ErrInvalidRange
	}
	return nil
}

// IsIdentity reports whether Apply leaves values unchanged.
func (r Range) IsIdentity() bool {
	return r == DefaultRange
}

// Apply maps -1 to Min and 1 to Max linearly. Values outside [-1, 1]
// are extrapolated, not clamped.
func (r Range) Apply(v float64) float64 {
	if r.IsIdentity() {
		return v
	}
	return r.Min + (r.Max-r.Min)*((v+1.0)*0.5)
}

// ApplyAll returns a new slice with Apply run on every value.
func (r Range) ApplyAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = r.Apply(v)
	}
	return out
}
