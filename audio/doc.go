// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the animator works on.
//
// This package contains the low-level building blocks:
//   - Buffer, an interleaved 16-bit PCM signal with its channel count and rate
//   - ExtractChannel for de-interleaving one channel
//   - Decoder interface and a format Registry
//
// # Buffer
//
// A Buffer is what every decoder produces:
//
//	type Buffer struct {
//	    Samples    []int16
//	    Channels   int
//	    SampleRate int
//	}
//
// Frames and Duration are derived from the samples. Duration is truncated
// to whole seconds.
//
// # Channel Extraction
//
// Interleaved samples are split per channel by taking every Nth value:
//
//	left, err := audio.ExtractChannel(buf.Samples, 0, buf.Channels)
//	right, err := buf.Channel(1)
//
// An index outside [0, channels) returns ErrInvalidChannelIndex. A buffer
// that is shorter than the index yields an empty slice.
//
// # Format Registry
//
// The registry maps a format key to a decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("drums.WAV")
//
// ForPath returns ErrUnsupportedFormat for unknown extensions.
//
// # Sample Format
//
// Only signed 16-bit linear PCM is carried. Conversion to floats happens
// later, in the utils package, by dividing by 32767.
package audio
