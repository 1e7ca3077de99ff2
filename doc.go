// SPDX-License-Identifier: EPL-2.0

// Package audanim turns audio into keyframe animation data.
//
// Each channel of a 16-bit PCM file (left, right and an optional sub)
// is reduced to one control value per keyframe and written as a keyframed
// property on a target object, so that objects can pulse, scale or shake
// in time with a soundtrack.
//
// # Supported Formats
//
// The package decodes the following formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Up to three channels are animated. Files with more channels are
// rejected before anything is written.
//
// # Quick Start
//
// The simplest way to animate a file is AnimateFile:
//
//	scene := curve.NewScene("Speaker")
//	cfg := animator.DefaultConfig()
//	cfg.Bindings[0].Target = "Speaker"
//
//	res, err := audanim.AnimateFile("~/music/beat.wav", cfg, scene)
//	if err != nil {
//	    // inspect res.Channels for partial output
//	}
//
//	// scene now holds "Driver_L" and "Wobble_L" on Speaker
//
// # Processing Pipeline
//
// For more control, use the subpackages directly:
//
//	buf, _ := wav.Decoder{}.Decode(file)
//
//	// raw decimation
//	stride, _ := envelope.Stride(buf.SampleRate, 24, 2)
//	left, _ := buf.Channel(0)
//	track, _ := envelope.Decimate(left, stride)
//
//	// or an envelope blended halfway between average and peak
//	track, _ = envelope.Process(left, buf.SampleRate, 24, 2, 0.5)
//
//	// write it
//	curve.EmitScalar(target, "Driver_L", track, 2, 1)
//
// # Keyframe Timing
//
// With frame rate F and K keyframes per frame, a bracket of
// sampleRate / (K*F) samples becomes one keyframe, and keyframe i lands on
// frame offset + i/K. The wobble vector track gets one vector per frame.
//
// # Writing WAV Files
//
// The package can write PCM WAV files, which is handy for fixtures:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 8000, 2, samples)
//
// See the individual subpackages for more detailed documentation.
package audanim
