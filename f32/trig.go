package f32

// Cos returns an approximation of the cosine of x (radians).
//
// x is reduced with Mod(x, 2π). Absolute error is below 1e-4 for moderate |x|
// and grows once the reduction starts losing precision.
func Cos(x float32) float32 {
	// Fold one period onto [-π/2, π/2]; the folded value is the sine of the
	// result's angle, corrected by two cubic terms.
	x = Abs(Mod(x, tau)-pi) - halfPi
	x += (cosC1 * x) * (x * x)
	x += (cosC2 * x) * (x * x)
	return x
}

// Sin returns an approximation of the sine of x, computed as Cos(x - π/2).
func Sin(x float32) float32 {
	return Cos(x - halfPi)
}

// Sincos returns Sin(x) and Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return Sin(x), Cos(x)
}

// Tan returns an approximation of the tangent of x.
//
// Absolute error is below 2e-5 for |x| <= 0.8 and degrades towards the poles
// at odd multiples of π/2.
func Tan(x float32) float32 {
	// Wrap x/π to [-0.5, 0.5] and scale to [-1, 1].
	x *= invPi
	x = 2 * (x - Round(x))
	y := 1 - x*x
	return x * (tanA*y + tanB + tanC/y)
}

// Asin returns an approximation of the arcsine of x, with absolute error
// below 4e-3. The result for |x| > 1 is unspecified.
func Asin(x float32) float32 {
	s := Sign(x)
	x = Abs(x)
	z := 1 - Sqrt(1-x*x)
	a := x - 0.35
	x = quarterPi*(x+z+0.12*z*z) + asinOffset - asinQuad*a*a
	return s * x
}

// Acos returns an approximation of the arccosine of x, computed as
// Asin(-x) + π/2. The result for |x| > 1 is unspecified.
func Acos(x float32) float32 {
	return Asin(-x) + halfPi
}

// Atan2 returns an approximation of the arc tangent of y/x, using the signs
// of both to determine the quadrant. Absolute error is below 3e-4.
//
// The octant fix-up is done on the bit pattern: the result is negated and
// offset by π/2 or π through sign-bit XOR and masked constants rather than
// branches. Atan2(0, 0) is unspecified.
func Atan2(y, x float32) float32 {
	nx := Bits(x) >> 31
	ny := Bits(y) & signMask

	x = Abs(x)
	y = Abs(y)
	p := b2u(y > x)
	t := Min(x, y) / Max(x, y)

	z := t * t
	z = ((atanC3*z+atanC2)*z-atanC1)*z*t + t

	z -= FromBits(p * Bits(halfPi))
	z = FromBits(Bits(z) ^ (p^nx)<<31)
	z += FromBits(nx * Bits(pi))
	return FromBits(Bits(z)&absMask | ny)
}
