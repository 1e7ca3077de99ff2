// SPDX-License-Identifier: EPL-2.0

// Package envelope turns a channel of 16-bit samples into a keyframe-rate
// control track.
//
// Two paths exist. Without preprocessing, the signal is decimated: every
// Stride-th sample is kept and normalized. With preprocessing, the signal
// is cut into windows of BracketSize samples and each window is reduced to
// one value.
//
// # Timing
//
//	bracket := sampleRate / (keyframesPerFrame * frameRate)
//	stride  := (sampleRate / frameRate) / keyframesPerFrame
//
// Both must be at least 1, otherwise ErrInvalidBracketSize is returned.
//
// # Strategies
//
// The bias picks how a window is reduced:
//   - 0: Averaged. Magnitude is the mean of absolute values, sign is the
//     sign of the window's net charge (sum of signed samples).
//   - 1: Peak. The first sample with the largest magnitude, sign kept.
//   - between: Blended, bias*peak + (1-bias)*average.
//
// Every result is divided by 32767. Windows are independent; there is no
// smoothing across windows.
//
//	track, err := envelope.Process(left, 44100, 25, 2, 0.5)
//
// # Range
//
// Range rescales a normalized track into [Min, Max]. DefaultRange is the
// identity.
package envelope
