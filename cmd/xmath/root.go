package main

import (
	"io"

	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "xmath",
		Short:         "Inspect and profile the f32 approximations",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(
		newInfoCmd(opts),
		newEvalCmd(opts),
		newSweepCmd(opts),
	)
	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// output wraps w for styled printing; colour is dropped with --no-color or
// when w is not a terminal.
func (o *options) output(w io.Writer) *termenv.Output {
	if o.noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}
