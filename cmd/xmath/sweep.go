package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xmath-go/xmath/internal/errprof"
)

// errThreshold is returned when at least one sweep broke its threshold.
var errThreshold = errors.New("error threshold exceeded")

func newSweepCmd(opts *options) *cobra.Command {
	var (
		rf     rangeFlags
		limit  thresholds
		config string
	)

	cmd := &cobra.Command{
		Use:   "sweep [func...|all]",
		Short: "Profile the error of functions over a range",
		Long: `Sweep evaluates each function over a range of inputs and reports the
maximum and mean error against a float32 reference.

Functions are named as in "xmath eval"; "all" selects every unary function
with its default range. With --config, the sweeps are read from a TOML file
of [[sweep]] tables instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var jobs []sweepJob
			switch {
			case config != "" && len(args) > 0:
				return errors.New("--config and function arguments are mutually exclusive")
			case config != "":
				var err error
				if jobs, err = loadSweepFile(config); err != nil {
					return err
				}
			case len(args) == 0:
				return errors.New("no functions given (use \"all\" or --config)")
			default:
				var err error
				if jobs, err = jobsFromArgs(cmd, args, &rf, limit); err != nil {
					return err
				}
			}
			return runSweeps(opts.output(cmd.OutOrStdout()), jobs)
		},
	}

	fs := cmd.Flags()
	bindRangeFlags(fs, &rf)
	bindThresholdFlags(fs, &limit)
	fs.StringVar(&config, "config", "", "TOML file with [[sweep]] entries")
	return cmd
}

func jobsFromArgs(cmd *cobra.Command, args []string, rf *rangeFlags, limit thresholds) ([]sweepJob, error) {
	var funcs []errprof.Func
	if len(args) == 1 && args[0] == "all" {
		funcs = lo.Filter(errprof.Registry(), func(f errprof.Func, _ int) bool { return f.Arity == 1 })
	} else {
		for _, name := range lo.Uniq(args) {
			f, err := errprof.Lookup(name)
			if err != nil {
				return nil, err
			}
			funcs = append(funcs, f)
		}
	}

	return lo.Map(funcs, func(f errprof.Func, _ int) sweepJob {
		return sweepJob{fn: f, rng: rf.apply(cmd.Flags(), f.Range), limit: limit}
	}), nil
}

func runSweeps(out *termenv.Output, jobs []sweepJob) error {
	printHeader(out)
	failed := 0
	for _, job := range jobs {
		log.Debugf("Sweeping %s over %+v", job.fn.Name, job.rng)
		rep, err := errprof.Sweep(job.fn, job.rng)
		if err != nil {
			return err
		}
		bad := job.limit.exceeded(job.fn, rep)
		if bad {
			failed++
		}
		printReport(out, job.fn, rep, bad)
	}
	if failed > 0 {
		return fmt.Errorf("%w in %d of %d sweeps", errThreshold, failed, len(jobs))
	}
	return nil
}

const rowFormat = "%-8s %8s %12s %12s %12s %12s  %s\n"

func printHeader(w io.Writer) {
	fmt.Fprintf(w, rowFormat, "FUNC", "SAMPLES", "MAX ABS", "MAX REL", "MEAN ABS", "WORST X", "STATUS")
}

func printReport(out *termenv.Output, f errprof.Func, rep errprof.Report, bad bool) {
	status := out.String("ok").Foreground(out.Color("2"))
	if bad {
		status = out.String("FAIL").Foreground(out.Color("1")).Bold()
	}
	row := fmt.Sprintf(rowFormat, rep.Name, fmt.Sprint(rep.Samples),
		fmt.Sprintf("%.4g", rep.MaxAbs), fmt.Sprintf("%.4g", rep.MaxRel),
		fmt.Sprintf("%.4g", rep.MeanAbs), fmt.Sprintf("%.6g", rep.WorstX), status)
	if bad {
		row = out.String(row).Foreground(out.Color("1")).String()
	}
	fmt.Fprint(out, row)
	log.Debugf("%s: worst %.4g against bound %.4g (relative=%v)", f.Name, rep.Worst(f), f.Bound, f.Relative)
}
