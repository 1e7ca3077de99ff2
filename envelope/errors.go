// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	ErrInvalidBracketSize = errors.New("bracket size must be at least one sample")
	ErrInvalidTiming      = errors.New("frame rate and keyframes per frame must be positive")
	ErrInvalidBias        = errors.New("bias must be within [0, 1]")
	ErrInvalidRange       = errors.New("range minimum must not exceed maximum")
)
