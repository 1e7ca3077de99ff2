// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrInvalidChannelIndex = errors.New("channel index out of range")
	ErrInvalidChannelCount = errors.New("channel count must be positive")
)
