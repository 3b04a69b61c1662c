package main

import (
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/xmath-go/xmath/f32"
	"github.com/xmath-go/xmath/internal/cpuinfo"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected backend, accuracy tier and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := opts.output(cmd.OutOrStdout())

			fmt.Fprintf(out, "arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "level:     %s\n", f32.CurrentName())
			fmt.Fprintf(out, "backend:   %s\n", f32.CurrentBackend().Name())
			fmt.Fprintf(out, "accuracy:  %s\n", lo.Ternary(f32.Accurate(), "accurate (xmath_acc)", "fast"))
			if f32.NoHardwareEnv() {
				fmt.Fprintln(out, "note:      XMATH_PORTABLE is set")
			}

			features := cpuinfo.Features()
			if len(features) == 0 {
				return nil
			}
			fmt.Fprintln(out, "\nCPU features:")
			for _, f := range features {
				mark := out.String("no ").Foreground(out.Color("1"))
				if f.Present {
					mark = out.String("yes").Foreground(out.Color("2"))
				}
				fmt.Fprintf(out, "  %-8s %s  %s\n", f.Name, mark, f.Note)
			}
			return nil
		},
	}
}
