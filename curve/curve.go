// SPDX-License-Identifier: EPL-2.0

package curve

// Vector is one sample of a three component track.
type Vector [3]float64

// ControlPoint is one keyframe: a property value at a timeline frame.
// Value is a float64 for scalar tracks and a Vector for vector tracks.
type ControlPoint struct {
	Frame float64 `json:"frame"`
	Value any     `json:"value"`
}

// Target is an external object whose properties can be animated.
// Implementations are owned by the host; the emitter only issues writes.
type Target interface {
	// Property returns the current value of name and whether it exists.
	Property(name string) (any, bool)
	// SetProperty assigns value to name, declaring it when absent.
	SetProperty(name string, value any) error
	// InsertControlPoint records the current value of name at frame.
	InsertControlPoint(name string, frame float64) error
}

// Store resolves target identifiers to targets.
type Store interface {
	Lookup(id string) (Target, error)
}
