package f32

// Trunc rounds x toward zero.
//
// With the portable backend the result is only defined for |x| < 2^31.
func Trunc(x float32) float32 {
	return backend.Trunc(x)
}

// Floor returns the greatest integral value less than or equal to x.
func Floor(x float32) float32 {
	return backend.Floor(x)
}

// Ceil returns the least integral value greater than or equal to x.
func Ceil(x float32) float32 {
	return backend.Ceil(x)
}

// Round returns the nearest integral value, rounding half away from zero:
// Round(2.5) = 3 and Round(-2.5) = -3.
func Round(x float32) float32 {
	return backend.Round(x)
}

// Mod returns x - e*Floor(x/e).
//
// Unlike math.Mod the result takes the sign of e: Mod(-5.5, 2) = 0.5.
func Mod(x, e float32) float32 {
	return x - e*Floor(x/e)
}

// Fract returns x - Floor(x), which lies in [0, 1) for finite x.
func Fract(x float32) float32 {
	return x - Floor(x)
}

func truncPortable(x float32) float32 {
	return float32(int32(x))
}

// floorPortable subtracts the sign bit r as a value and then as one unit in
// the last place, so that truncation lands on the next integer down for
// negative inputs, including negative integers.
func floorPortable(x float32) float32 {
	r := Bits(x) >> 31
	x -= float32(r)
	return truncPortable(FromBits(Bits(x) - r))
}

// ceilPortable mirrors floorPortable with 1-r.
func ceilPortable(x float32) float32 {
	r := 1 - Bits(x)>>31
	x += float32(r)
	return truncPortable(FromBits(Bits(x) - r))
}

// roundPortable adds just under one half, then removes one more unit when the
// biased value is negative before truncating.
func roundPortable(x float32) float32 {
	x += roundBias
	u := Bits(x) >> 31
	return truncPortable(x - float32(u))
}
