// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale16 is the largest positive 16-bit PCM value.
const FullScale16 = 32767.0

// DecodeScale16 is the divisor the decoders use to normalize 16-bit PCM.
const DecodeScale16 = 32768.0

// DecodedToInt16 is the inverse of the decoders' normalization: it scales by
// 32768, rounds to nearest and saturates to the int16 range, so a decoded
// 16-bit sample comes back unchanged.
func DecodedToInt16(x float32) int16 {
	v := math.Round(float64(x) * DecodeScale16)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// ScaleToInt16 maps a normalized value to 16-bit PCM at the given amplitude.
// The conversion truncates toward zero and does not clamp, so callers must
// keep |v*amplitude| <= 1.
func ScaleToInt16(v, amplitude float64) int16 {
	return int16(v * amplitude * FullScale16)
}
