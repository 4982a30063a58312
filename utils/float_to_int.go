package utils

// Float32ToInt16 quantizes a float32 sample to signed 16-bit PCM.
// The input is clamped to [-1, 1] first. Scaling is asymmetric: negative
// values scale by 32768, non-negative values by 32767, so a full-scale
// negative sample reaches -32768 while positives top out at 32767.
// The asymmetry is part of the encoded byte contract; keep it.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}
