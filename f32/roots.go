package f32

// Sqrt returns an approximation of the square root of x.
//
// Relative error is below 1e-3 with the portable backend (1e-6 with the
// xmath_acc tag) and exact with the hardware backend. The result for x < 0 is
// unspecified.
func Sqrt(x float32) float32 {
	return backend.Sqrt(x)
}

// Rsqrt returns an approximation of 1/Sqrt(x).
//
// Relative error is below 2e-3 with the portable backend (1e-5 with the
// xmath_acc tag). The result for x <= 0 is unspecified.
func Rsqrt(x float32) float32 {
	return backend.Rsqrt(x)
}

// Cbrt returns an approximation of the cube root of x, with relative error
// below 1e-4. The sign of x is carried through exactly.
func Cbrt(x float32) float32 {
	s := Sign(x)
	x = Abs(x)

	// y ≈ x^(-1/3): dividing the bit pattern by three divides the exponent.
	y := FromBits(cbrtMagic - Bits(x)/3)
	c := x * y * y * y
	y *= cbrtA + c*(cbrtB*c+cbrtC)

	// d ≈ x^(1/3); one division-free correction step.
	d := x * y * y
	c = d - d*d*y
	c = c*oneThird + d
	return s * c
}

// sqrtSeed halves the exponent of x after adding sqrtMagic.
func sqrtSeed(x float32) float32 {
	return FromBits((Bits(x) + sqrtMagic) >> 1)
}

// sqrtStep is one Newton–Raphson iteration for s² = x.
func sqrtStep(s, x float32) float32 {
	return 0.5 * (s + x/s)
}

func rsqrtSeed(x float32) float32 {
	return FromBits(rsqrtMagic - Bits(x)>>1)
}

// rsqrtStep is one Newton–Raphson iteration for 1/r² = x, with half = x/2.
func rsqrtStep(r, half float32) float32 {
	return r * (1.5 - half*r*r)
}
