package f32

import stdmath "math"

// linspace returns n evenly spaced samples over [from, to].
func linspace(from, to float64, n int) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = float32(from + (to-from)*float64(i)/float64(n-1))
	}
	return xs
}

// logspace returns n geometrically spaced samples over [from, to], from > 0.
func logspace(from, to float64, n int) []float32 {
	lf, lt := stdmath.Log(from), stdmath.Log(to)
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = float32(stdmath.Exp(lf + (lt-lf)*float64(i)/float64(n-1)))
	}
	return xs
}

func absErr(got float32, want float64) float64 {
	return stdmath.Abs(float64(got) - want)
}

func relErr(got float32, want float64) float64 {
	return stdmath.Abs(float64(got)-want) / stdmath.Abs(want)
}

// maxErr applies fn to every sample and returns the largest error against
// ref, together with the sample that produced it.
func maxErr(xs []float32, fn func(float32) float32, ref func(float64) float64, errFn func(float32, float64) float64) (worst float64, at float32) {
	for _, x := range xs {
		if e := errFn(fn(x), ref(float64(x))); e > worst {
			worst, at = e, x
		}
	}
	return worst, at
}
