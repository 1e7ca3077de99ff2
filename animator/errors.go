// SPDX-License-Identifier: EPL-2.0

package animator

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientResolution   = errors.New("sample rate too low for the requested keyframe rate")
	ErrUnsupportedChannelLayout = errors.New("only 1 to 3 channels can be animated")
	ErrNilBuffer                = errors.New("audio buffer is nil")
	ErrNilStore                 = errors.New("target store is nil")
	ErrInvalidFrameRate         = errors.New("frame rate must be between 1 and 1000")
	ErrInvalidKeyframes         = errors.New("keyframes per frame must be between 1 and 48000")
	ErrInvalidOffset            = errors.New("start offset must be a finite number")
)

// Stage names the step of a channel pipeline that failed.
type Stage string

const (
	StageResolve Stage = "resolve"
	StageExtract Stage = "extract"
	StageProcess Stage = "process"
	StageEmit    Stage = "emit"
)

// ChannelError represents a failure while animating one output channel.
// Other channels are not affected by it.
type ChannelError struct {
	Channel int
	Suffix  string
	Target  string
	Stage   Stage
	Cause   error
}

func (e *ChannelError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("channel %s (%d) failed at %s for %q: %v", e.Suffix, e.Channel, e.Stage, e.Target, e.Cause)
	}
	return fmt.Sprintf("channel %s (%d) failed at %s: %v", e.Suffix, e.Channel, e.Stage, e.Cause)
}

func (e *ChannelError) Unwrap() error {
	return e.Cause
}
