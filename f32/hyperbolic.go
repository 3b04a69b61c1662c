package f32

// Sinh returns an approximation of the hyperbolic sine of x.
//
// Both exponentials are taken at an argument lowered by one, 2^(a-1) = e^x/2,
// so no division by two is needed. Error follows Exp2: relative error is
// comparable to Exp2's for |x| >= 1, while near zero the subtraction leaves
// an absolute error of about Exp2's relative error.
func Sinh(x float32) float32 {
	a := log2E*x - 1
	b := negLog2E*x - 1
	return Exp2(a) - Exp2(b)
}

// Cosh returns an approximation of the hyperbolic cosine of x, with the
// relative error of Exp2.
func Cosh(x float32) float32 {
	a := log2E*x - 1
	b := negLog2E*x - 1
	return Exp2(a) + Exp2(b)
}

// Tanh returns an approximation of the hyperbolic tangent of x.
//
// Below |x| = 1 a polynomial is used (absolute error below 7e-2); from 1 up
// the rational form s - s/q² (absolute error below 6e-3). The two branches
// have different error profiles and meet with a small step at |x| = 1.
func Tanh(x float32) float32 {
	s := Sign(x)
	x = Abs(x)
	if x < 1 {
		z := 0.07 * x * x
		return s * (x + (z*x+tanhC)*z)
	}
	q := (1.05*x-0.1)*x + 1.09
	return s - s/(q*q)
}
