// Package errprof measures the error of the f32 approximations against
// float32 reference implementations.
package errprof

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadRange is returned for empty, inverted or non-finite sweep ranges.
	ErrBadRange = errors.New("invalid range")

	// ErrUnknownFunc is returned by Lookup for names not in the registry.
	ErrUnknownFunc = errors.New("unknown function")

	// ErrArity is returned when the number of arguments does not match the
	// function, or when a binary function is swept.
	ErrArity = errors.New("wrong number of arguments")
)

// Range is a sweep domain of Steps+1 samples over [From, To].
type Range struct {
	From, To float64
	Steps    int

	// Log spaces the samples geometrically; From must be positive.
	Log bool
}

// Validate checks that r describes a non-empty sweep.
func (r Range) Validate() error {
	switch {
	case math.IsNaN(r.From) || math.IsNaN(r.To) || math.IsInf(r.From, 0) || math.IsInf(r.To, 0):
		return fmt.Errorf("%w: bounds [%v, %v] must be finite", ErrBadRange, r.From, r.To)
	case r.From >= r.To:
		return fmt.Errorf("%w: from %v must be below to %v", ErrBadRange, r.From, r.To)
	case r.Steps < 1:
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrBadRange, r.Steps)
	case r.Log && r.From <= 0:
		return fmt.Errorf("%w: log sweep needs from > 0, got %v", ErrBadRange, r.From)
	}
	return nil
}

// At returns sample i of r, 0 <= i <= Steps.
func (r Range) At(i int) float32 {
	t := float64(i) / float64(r.Steps)
	if r.Log {
		lf, lt := math.Log(r.From), math.Log(r.To)
		return float32(math.Exp(lf + (lt-lf)*t))
	}
	return float32(r.From + (r.To-r.From)*t)
}

// Report summarizes a sweep.
type Report struct {
	Name    string
	Samples int

	MaxAbs  float64
	MaxRel  float64
	MeanAbs float64

	// WorstX is the sample with the largest error, measured relatively or
	// absolutely depending on the function.
	WorstX float32
}

// Worst returns MaxRel for relative functions and MaxAbs otherwise.
func (r Report) Worst(f Func) float64 {
	if f.Relative {
		return r.MaxRel
	}
	return r.MaxAbs
}

// Sweep evaluates the unary function f over r and reports its error against
// the reference. Samples whose reference value is not finite are skipped;
// samples with a zero reference do not contribute to MaxRel.
func Sweep(f Func, r Range) (Report, error) {
	if f.Arity != 1 {
		return Report{}, fmt.Errorf("%w: cannot sweep %s, it takes %d arguments", ErrArity, f.Name, f.Arity)
	}
	if err := r.Validate(); err != nil {
		return Report{}, fmt.Errorf("sweep %s: %w", f.Name, err)
	}

	rep := Report{Name: f.Name}
	var sumAbs, worst float64
	for i := 0; i <= r.Steps; i++ {
		x := r.At(i)
		want := float64(f.Ref(x, 0))
		if math.IsNaN(want) || math.IsInf(want, 0) {
			continue
		}
		got := float64(f.Approx(x, 0))

		abs := math.Abs(got - want)
		rel := 0.0
		if want != 0 {
			rel = abs / math.Abs(want)
		}

		rep.Samples++
		sumAbs += abs
		rep.MaxAbs = max(rep.MaxAbs, abs)
		rep.MaxRel = max(rep.MaxRel, rel)

		e := abs
		if f.Relative {
			e = rel
		}
		if e > worst || rep.Samples == 1 {
			worst, rep.WorstX = e, x
		}
	}
	if rep.Samples > 0 {
		rep.MeanAbs = sumAbs / float64(rep.Samples)
	}
	return rep, nil
}

// Eval computes f and its reference at args.
func Eval(f Func, args ...float32) (approx, ref float32, err error) {
	if f.Arity < 1 || len(args) != f.Arity {
		return 0, 0, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, f.Name, f.Arity, len(args))
	}
	x, y := args[0], float32(0)
	if f.Arity == 2 {
		y = args[1]
	}
	return f.Approx(x, y), f.Ref(x, y), nil
}
