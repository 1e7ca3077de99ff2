// SPDX-License-Identifier: EPL-2.0

package curve

import "fmt"

// EmitScalar writes one control point per value, spaced
// 1/keyframesPerFrame frames apart starting at offset.
//
// The property is declared with a zero value first when the target does
// not have it yet.
func EmitScalar(t Target, name string, values []float64, keyframesPerFrame int, offset float64) error {
	if keyframesPerFrame < 1 {
		return ErrInvalidSpacing
	}
	if err := declare(t, name, 0.0); err != nil {
		return err
	}

	span := float64(keyframesPerFrame)
	for i, v := range values {
		// frame is computed per index so long tracks do not drift
		if err := write(t, name, v, offset+float64(i)/span); err != nil {
			return err
		}
	}

	return nil
}

// EmitVector writes one control point per vector, one frame apart
// starting at offset.
func EmitVector(t Target, name string, values []Vector, offset float64) error {
	if err := declare(t, name, Vector{}); err != nil {
		return err
	}

	for i, v := range values {
		if err := write(t, name, v, offset+float64(i)); err != nil {
			return err
		}
	}

	return nil
}

func declare(t Target, name string, zero any) error {
	if t == nil {
		return ErrNilTarget
	}
	if name == "" {
		return ErrEmptyProperty
	}

	if _, ok := t.Property(name); ok {
		return nil
	}
	if err := t.SetProperty(name, zero); err != nil {
		return fmt.Errorf("declaring %q: %w", name, err)
	}
	return nil
}

func write(t Target, name string, value any, frame float64) error {
	if err := t.SetProperty(name, value); err != nil {
		return fmt.Errorf("setting %q at frame %g: %w", name, frame, err)
	}
	if err := t.InsertControlPoint(name, frame); err != nil {
		return fmt.Errorf("keying %q at frame %g: %w", name, frame, err)
	}
	return nil
}
