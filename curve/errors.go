// SPDX-License-Identifier: EPL-2.0

package curve

import "errors"

var (
	ErrUnboundTarget   = errors.New("target does not resolve in the store")
	ErrNilTarget       = errors.New("target is nil")
	ErrEmptyProperty   = errors.New("property name is empty")
	ErrUnknownProperty = errors.New("property is not declared on the target")
	ErrInvalidSpacing  = errors.New("keyframes per frame must be positive")
)
