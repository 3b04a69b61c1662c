package errprof

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chewxy/math32"
	"github.com/samber/lo"

	"github.com/xmath-go/xmath/f32"
)

// Func describes one approximate function and the reference it is measured
// against.
type Func struct {
	Name  string
	Arity int

	// Approx and Ref take two arguments; unary functions ignore y.
	Approx func(x, y float32) float32
	Ref    func(x, y float32) float32

	// Range is the default sweep domain. It is zero for binary functions.
	Range Range

	// Relative is true when Bound is a relative error bound.
	Relative bool

	// Bound is the documented error bound for the backend and accuracy tier
	// this process runs with.
	Bound float64
}

func unary(name string, approx, ref func(float32) float32, r Range, relative bool, bound float64) Func {
	return Func{
		Name:     name,
		Arity:    1,
		Approx:   func(x, _ float32) float32 { return approx(x) },
		Ref:      func(x, _ float32) float32 { return ref(x) },
		Range:    r,
		Relative: relative,
		Bound:    bound,
	}
}

func binary(name string, approx, ref func(x, y float32) float32, relative bool, bound float64) Func {
	return Func{
		Name:     name,
		Arity:    2,
		Approx:   approx,
		Ref:      ref,
		Relative: relative,
		Bound:    bound,
	}
}

// tier picks the fast or accurate bound for the current build.
func tier(fast, accurate float64) float64 {
	return lo.Ternary(f32.Accurate(), accurate, fast)
}

func floorMod(x, y float32) float32 {
	r := math32.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

var registry = buildRegistry()

func buildRegistry() map[string]Func {
	hardware := f32.CurrentLevel() != f32.LevelPortable
	sqrtBound := tier(1e-3, 1e-6)
	rsqrtBound := tier(2e-3, 1e-5)
	if hardware {
		sqrtBound, rsqrtBound = 1e-6, 1e-6
	}
	expBound := tier(4.5e-2, 2e-3)
	logBound := tier(6e-2, 1e-2)
	ln2, log10E := float64(math32.Ln2), float64(math32.Log10E)

	lin := func(from, to float64) Range { return Range{From: from, To: to, Steps: 10000} }
	geo := func(from, to float64) Range { return Range{From: from, To: to, Steps: 10000, Log: true} }
	rounding := lin(-1000, 1000)

	funcs := []Func{
		unary("abs", f32.Abs, math32.Abs, lin(-100, 100), false, 0),
		unary("trunc", f32.Trunc, math32.Trunc, rounding, false, 0),
		unary("floor", f32.Floor, math32.Floor, rounding, false, 0),
		unary("ceil", f32.Ceil, math32.Ceil, rounding, false, 0),
		unary("round", f32.Round, math32.Round, rounding, false, 0),
		unary("fract", f32.Fract, func(x float32) float32 { return x - math32.Floor(x) }, rounding, false, 1e-6),
		binary("mod", f32.Mod, floorMod, false, 1e-4),

		unary("sqrt", f32.Sqrt, math32.Sqrt, geo(1e-6, 1e6), true, sqrtBound),
		unary("rsqrt", f32.Rsqrt, func(x float32) float32 { return 1 / math32.Sqrt(x) }, geo(1e-6, 1e6), true, rsqrtBound),
		unary("cbrt", f32.Cbrt, math32.Cbrt, geo(1e-6, 1e6), true, 1e-4),

		unary("sin", f32.Sin, math32.Sin, lin(-10, 10), false, 1e-4),
		unary("cos", f32.Cos, math32.Cos, lin(-10, 10), false, 1e-4),
		unary("tan", f32.Tan, math32.Tan, lin(-0.8, 0.8), false, 2e-5),
		unary("asin", f32.Asin, math32.Asin, lin(-1, 1), false, 4e-3),
		unary("acos", f32.Acos, math32.Acos, lin(-1, 1), false, 4e-3),
		binary("atan2", f32.Atan2, math32.Atan2, false, 3e-4),

		unary("exp2", f32.Exp2, math32.Exp2, lin(-20, 20), true, expBound),
		unary("exp", f32.Exp, math32.Exp, lin(-10, 10), true, expBound),
		unary("exp10", f32.Exp10, func(x float32) float32 { return math32.Pow(10, x) }, lin(-5, 5), true, expBound),
		unary("log2", f32.Log2, math32.Log2, geo(1e-3, 1e3), false, logBound),
		unary("log", f32.Log, math32.Log, geo(1e-3, 1e3), false, logBound*ln2),
		unary("log10", f32.Log10, math32.Log10, geo(1e-3, 1e3), false, logBound*ln2*log10E),
		binary("pow", f32.Pow, math32.Pow, true, tier(0.25, 5e-2)),

		unary("sinh", f32.Sinh, math32.Sinh, lin(1, 5), true, tier(4.5e-2, 3e-3)),
		unary("cosh", f32.Cosh, math32.Cosh, lin(-5, 5), true, tier(4.5e-2, 3e-3)),
		unary("tanh", f32.Tanh, math32.Tanh, lin(-3, 3), false, 7e-2),

		binary("min", f32.Min, math32.Min, false, 0),
		binary("max", f32.Max, math32.Max, false, 0),
	}
	return lo.KeyBy(funcs, func(f Func) string { return f.Name })
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Registry returns every registered function, sorted by name.
func Registry() []Func {
	return lo.Map(Names(), func(name string, _ int) Func { return registry[name] })
}

// Lookup returns the function registered under name (case-insensitive).
func Lookup(name string) (Func, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return Func{}, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
	}
	return f, nil
}
