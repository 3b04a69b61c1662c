package main

import (
	"fmt"
	"math"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xmath-go/xmath/internal/errprof"
)

func newEvalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <func> <args...>",
		Short: "Evaluate one function next to its reference",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := errprof.Lookup(args[0])
			if err != nil {
				return err
			}
			xs, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			approx, ref, err := errprof.Eval(f, xs...)
			if err != nil {
				return err
			}
			log.Debugf("%s%v: approx bits %#08x, ref bits %#08x", f.Name, xs, math.Float32bits(approx), math.Float32bits(ref))

			abs := math.Abs(float64(approx) - float64(ref))
			out := opts.output(cmd.OutOrStdout())
			fmt.Fprintf(out, "approx   %.9g\n", approx)
			fmt.Fprintf(out, "ref      %.9g\n", ref)
			fmt.Fprintf(out, "abs err  %.4g\n", abs)
			if ref != 0 {
				fmt.Fprintf(out, "rel err  %.4g\n", abs/math.Abs(float64(ref)))
			}
			return nil
		},
	}
	// Negative arguments after the function name are values, not flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseArgs(args []string) ([]float32, error) {
	xs := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		xs[i] = float32(v)
	}
	return xs, nil
}
