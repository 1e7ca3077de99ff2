// SPDX-License-Identifier: EPL-2.0

// Package curve writes keyframe tracks to animatable targets.
//
// The host application owns the objects being animated. It exposes them
// through two small interfaces:
//
//	type Target interface {
//	    Property(name string) (any, bool)
//	    SetProperty(name string, value any) error
//	    InsertControlPoint(name string, frame float64) error
//	}
//
//	type Store interface {
//	    Lookup(id string) (Target, error)
//	}
//
// # Emitting
//
// EmitScalar spaces values 1/keyframesPerFrame frames apart, EmitVector
// spaces them one frame apart. Both start at the given offset and write in
// increasing frame order:
//
//	curve.EmitScalar(target, "Driver_L", track, 2, 1)   // frames 1, 1.5, 2, ...
//	curve.EmitVector(target, "Wobble_L", vectors, 1)   // frames 1, 2, 3, ...
//
// A property the target does not have yet is declared with its zero value
// (0.0 or Vector{}) before the first control point.
//
// # In-memory scene
//
// Scene and Object implement Store and Target without a host. They are used
// by the command line tool and by tests, and marshal to JSON.
package curve
