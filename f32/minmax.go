package f32

// Min returns the smaller of a and b. If either is NaN, b is returned.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b. If either is NaN, b is returned.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi], computed as Min(Max(x, lo), hi).
// For lo > hi the result is hi.
func Clamp(x, lo, hi float32) float32 {
	return Min(Max(x, lo), hi)
}
