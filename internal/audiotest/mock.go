// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audanim/audio"
)

// NewBuffer creates an interleaved 16-bit buffer for testing.
// frames is the number of samples per channel.
// waveform returns the sample for a given frame index and channel.
func NewBuffer(sampleRate, channels, frames int, waveform func(frame int, channel int) int16) *audio.Buffer {
	samples := make([]int16, frames*channels)
	for f := range frames {
		for ch := range channels {
			samples[f*channels+ch] = waveform(f, ch)
		}
	}

	return &audio.Buffer{
		Samples:    samples,
		Channels:   channels,
		SampleRate: sampleRate,
	}
}

// NewSilentBuffer creates a buffer that holds silence (all zeros).
func NewSilentBuffer(sampleRate, channels, frames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, channel int) int16 {
		return 0
	})
}

// NewSineBuffer creates a buffer holding a sine wave of the given peak amplitude.
func NewSineBuffer(sampleRate, channels, frames int, frequency float64, amplitude int16) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantBuffer creates a buffer with a constant value in every channel.
func NewConstantBuffer(sampleRate, channels, frames int, value int16) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, channel int) int16 {
		return value
	})
}

// NewChannelMarkedBuffer creates a buffer where every sample of channel c
// equals marks[c], so tests can tell channels apart after extraction.
func NewChannelMarkedBuffer(sampleRate, frames int, marks ...int16) *audio.Buffer {
	return NewBuffer(sampleRate, len(marks), frames, func(frame int, channel int) int16 {
		return marks[channel]
	})
}
