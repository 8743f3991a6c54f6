package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspread/sketch"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		frames int
		gen    generatorFlags
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the sketch at its configured rate, printing the status line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := gen.tracker()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			a.logger.Info("running", "interval", a.cfg.Interval(), "frames", frames)
			err = sketch.Run(ctx, tr, a.cfg.Interval(), frames, func(s sketch.Snapshot) error {
				_, err := fmt.Fprintln(out, s.Label())
				return err
			})
			if errors.Is(err, context.Canceled) {
				a.logger.Info("interrupted", "iteration", tr.Stats().Iteration)
				return nil
			}

			return err
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 0, "ticks to run, 0 until interrupted")
	cmd.Flags().StringVar(&gen.name, "generator", generatorSpread, "position source: spread or stride")
	cmd.Flags().Float64Var(&gen.stride, "stride", 0.4, "step of the stride generator, in (0,1)")

	return cmd
}
