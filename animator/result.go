// SPDX-License-Identifier: EPL-2.0

package animator

import "errors"

// State of an animation pass.
type State int

const (
	Idle State = iota
	Validating
	Rejected
	Processing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Rejected:
		return "rejected"
	case Processing:
		return "processing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// ChannelResult summarizes what was written for one output channel.
type ChannelResult struct {
	Index          int    `json:"index"`
	Suffix         string `json:"suffix"`
	Target         string `json:"target,omitempty"`
	ScalarProperty string `json:"scalar_property,omitempty"`
	VectorProperty string `json:"vector_property,omitempty"`
	Keyframes      int    `json:"keyframes"`
	Vectors        int    `json:"vectors"`
	Skipped        bool   `json:"skipped,omitempty"`
	Err            error  `json:"-"`
}

// Result of Animator.Run.
type Result struct {
	State    State           `json:"-"`
	Channels []ChannelResult `json:"channels"`
}

// Err joins the errors of every failed channel, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for _, ch := range r.Channels {
		if ch.Err != nil {
			errs = append(errs, ch.Err)
		}
	}
	return errors.Join(errs...)
}
