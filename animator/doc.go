// SPDX-License-Identifier: EPL-2.0

// Package animator drives the whole audio to keyframe transform.
//
// An Animator is built from a Config and a curve.Store. For every channel
// of a decoded audio.Buffer (left, right and sub, at most three) that has a
// bound target it:
//
//  1. de-interleaves the channel;
//  2. reduces it to one value per keyframe, either by decimation or, when
//     Config.Preprocess is set, by envelope extraction with Config.Bias;
//  3. optionally maps the [-1, 1] track through the binding's Range;
//  4. writes it as a scalar property spaced 1/KeyframesPerFrame frames
//     apart from Config.StartOffset;
//  5. derives a wobble vector per frame and writes it to the vector
//     property, when one is named.
//
// Buffers are validated before anything is written. A buffer with more
// than three channels, or whose sample rate cannot supply one sample per
// keyframe, is rejected and the store is left as it was.
//
// Basic usage:
//
//	scene := curve.NewScene("Cube", "Sphere")
//	cfg := animator.DefaultConfig()
//	cfg.Bindings[0].Target = "Cube"
//	cfg.Bindings[1].Target = "Sphere"
//
//	a, err := animator.New(cfg, scene, animator.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//
//	res, err := a.Run(buf)
//	if err != nil {
//		// res.Channels still tells which channels made it
//	}
//
// Property names default to "Driver_<suffix>" and "Wobble_<suffix>" where
// the suffix is L, R or S. A binding's Property of "Scale" writes only the
// scalar track; "Scale,Offset" writes both.
package animator
