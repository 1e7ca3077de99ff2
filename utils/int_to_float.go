// SPDX-License-Identifier: EPL-2.0

package utils

// PCM16Scale is the divisor used to normalize signed 16-bit samples.
// -32768 is not special-cased and maps slightly below -1.0.
const PCM16Scale = 32767.0

// Int16ToFloat64 converts a signed 16-bit PCM sample to a float.
// No clamping is applied, so the output range is [-32768/32767, 1.0].
func Int16ToFloat64(x int16) float64 {
	return float64(x) / PCM16Scale
}

// Int16sToFloat64s converts every sample in src.
func Int16sToFloat64s(src []int16) []float64 {
	out := make([]float64, len(src))
	for i, x := range src {
		out[i] = float64(x) / PCM16Scale
	}

	return out
}
