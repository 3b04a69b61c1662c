package f32

// Exp2 returns an approximation of 2**x.
//
// The default build writes (x + bias) * 2^23 straight into the bit pattern,
// giving relative error below 4.5e-2. With the xmath_acc tag the integer part
// of x goes to the exponent field and the fractional part through a quadratic,
// for relative error below 2e-3.
//
// Results for x below about -126 (fast) or outside the float32 exponent
// range (accurate) are unspecified.
func Exp2(x float32) float32 {
	if accurate {
		return exp2Accurate(x)
	}
	return exp2Fast(x)
}

// Exp returns an approximation of e**x, computed as Exp2(x * log₂(e)).
func Exp(x float32) float32 {
	return Exp2(x * log2E)
}

// Exp10 returns an approximation of 10**x, computed as Exp2(x * log₂(10)).
func Exp10(x float32) float32 {
	return Exp2(x * log2_10)
}

// Log2 returns an approximation of the binary logarithm of x.
//
// The default build reads the bit pattern as an integer and scales it, the
// inverse of the fast Exp2; absolute error is below 6e-2. With the xmath_acc
// tag the exponent is extracted and the mantissa goes through a quadratic,
// for absolute error below 1e-2. The result for x <= 0 is unspecified.
func Log2(x float32) float32 {
	if accurate {
		return log2Accurate(x)
	}
	return log2Fast(x)
}

// Log returns an approximation of the natural logarithm of x.
func Log(x float32) float32 {
	return Log2(x) * ln2
}

// Log10 returns an approximation of the decimal logarithm of x.
func Log10(x float32) float32 {
	return Log2(x) * log10_2
}

// Pow returns an approximation of x**y for x > 0, computed as
// Exp2(y * Log2(x)). The result for x <= 0 is unspecified.
func Pow(x, y float32) float32 {
	return Exp2(y * Log2(x))
}

func exp2Fast(x float32) float32 {
	return FromBits(uint32(mantissaScale * (x + exp2Bias)))
}

func exp2Accurate(x float32) float32 {
	// n is x in 9.23 fixed point; l keeps the integer part, already aligned
	// with the exponent field.
	n := int32(x * mantissaScale)
	l := n & -0x800000
	f := float32(n - l)

	// 2^frac scaled into [1, 2), added as bits on top of the exponent.
	f = (exp2C2*f+exp2C1)*f + exp2C0
	l += int32(Bits(f))
	return FromBits(uint32(l))
}

func log2Fast(x float32) float32 {
	return float32(Bits(x))*invMantissaScale - exp2Bias
}

func log2Accurate(x float32) float32 {
	a := Bits(x)
	e := int32(a>>23) & 0xff
	m := a & 0x7fffff

	// Mantissas at or above 1.5 are renormalized to [0.75, 1) and the
	// exponent is bumped, keeping the polynomial argument near zero.
	hi := (a >> 22) & 1
	e += int32(hi) - 127
	m |= (hi ^ 0x7f) << 23

	t := FromBits(m) - 1
	return float32(e) + t*(t*log2C2+log2C1)
}
