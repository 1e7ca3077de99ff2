// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/ik5/audanim/utils"

func checkTiming(sampleRate, frameRate, keyframesPerFrame int) error {
	if frameRate < 1 || keyframesPerFrame < 1 || sampleRate < 0 {
		return ErrInvalidTiming
	}
	return nil
}

// BracketSize returns how many audio samples collapse into one keyframe:
// sampleRate / (keyframesPerFrame * frameRate), computed by successive
// division so large rates cannot overflow.
func BracketSize(sampleRate, frameRate, keyframesPerFrame int) (int, error) {
	if err := checkTiming(sampleRate, frameRate, keyframesPerFrame); err != nil {
		return 0, err
	}

	b := sampleRate / frameRate / keyframesPerFrame
	if b < 1 {
		return 0, ErrInvalidBracketSize
	}
	return b, nil
}

// Stride returns the decimation step used when no envelope is extracted:
// (sampleRate / frameRate) / keyframesPerFrame.
func Stride(sampleRate, frameRate, keyframesPerFrame int) (int, error) {
	if err := checkTiming(sampleRate, frameRate, keyframesPerFrame); err != nil {
		return 0, err
	}

	samplesPerFrame := sampleRate / frameRate
	stride := samplesPerFrame / keyframesPerFrame
	if stride < 1 {
		return 0, ErrInvalidBracketSize
	}
	return stride, nil
}

// Decimate keeps signal[0], signal[stride], signal[2*stride], ... and
// normalizes each kept sample.
func Decimate(signal []int16, stride int) ([]float64, error) {
	if stride < 1 {
		return nil, ErrInvalidBracketSize
	}
	if stride == 1 {
		return utils.Int16sToFloat64s(signal), nil
	}

	out := make([]float64, 0, (len(signal)+stride-1)/stride)
	for i := 0; i < len(signal); i += stride {
		out = append(out, utils.Int16ToFloat64(signal[i]))
	}

	return out, nil
}
