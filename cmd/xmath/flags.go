package main

import (
	"github.com/spf13/pflag"

	"github.com/xmath-go/xmath/internal/errprof"
)

// rangeFlags holds the --from/--to/--steps/--log overrides of a sweep range.
type rangeFlags struct {
	from, to float64
	steps    int
	log      bool
}

// bindRangeFlags registers the range flags on fs.
func bindRangeFlags(fs *pflag.FlagSet, r *rangeFlags) {
	fs.Float64Var(&r.from, "from", 0, "Lower bound of the sweep (default: per function)")
	fs.Float64Var(&r.to, "to", 0, "Upper bound of the sweep (default: per function)")
	fs.IntVar(&r.steps, "steps", 0, "Number of sweep intervals (default: per function)")
	fs.BoolVar(&r.log, "log", false, "Space samples geometrically")
}

// apply returns base with every flag that was set on fs replacing the
// corresponding field.
func (r *rangeFlags) apply(fs *pflag.FlagSet, base errprof.Range) errprof.Range {
	if fs.Changed("from") {
		base.From = r.from
	}
	if fs.Changed("to") {
		base.To = r.to
	}
	if fs.Changed("steps") {
		base.Steps = r.steps
	}
	if fs.Changed("log") {
		base.Log = r.log
	}
	return base
}

// thresholds are the user limits for a sweep; zero means unset.
type thresholds struct {
	maxAbs, maxRel float64
}

func bindThresholdFlags(fs *pflag.FlagSet, th *thresholds) {
	fs.Float64Var(&th.maxAbs, "max-abs", 0, "Fail when the max absolute error exceeds this")
	fs.Float64Var(&th.maxRel, "max-rel", 0, "Fail when the max relative error exceeds this")
}

// exceeded reports whether rep breaks th. With no limit set, the documented
// bound of f is checked against its own error measure.
func (th thresholds) exceeded(f errprof.Func, rep errprof.Report) bool {
	if th.maxAbs == 0 && th.maxRel == 0 {
		return rep.Worst(f) > f.Bound
	}
	return (th.maxAbs > 0 && rep.MaxAbs > th.maxAbs) || (th.maxRel > 0 && rep.MaxRel > th.maxRel)
}
