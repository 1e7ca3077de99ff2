// SPDX-License-Identifier: EPL-2.0

package audio

// ExtractChannel returns every channels-th sample of samples starting at
// channel. A buffer shorter than channel+1 yields an empty slice.
func ExtractChannel(samples []int16, channel, channels int) ([]int16, error) {
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if channel < 0 || channel >= channels {
		return nil, ErrInvalidChannelIndex
	}

	if len(samples) <= channel {
		return []int16{}, nil
	}

	n := (len(samples) - channel + channels - 1) / channels
	out := make([]int16, n)

	// Fast path for mono: nothing to de-interleave
	if channels == 1 {
		copy(out, samples)
		return out, nil
	}

	for i, idx := 0, channel; i < n; i, idx = i+1, idx+channels {
		out[i] = samples[idx]
	}

	return out, nil
}
