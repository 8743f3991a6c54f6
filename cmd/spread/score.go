package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspread/spread"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score [position...]",
		Short: "Score how evenly positions cover the circle",
		Long: `score reads positions in [0,1) from the arguments, or whitespace-separated
from stdin when no arguments are given, and prints their uniformity, the
widest gap and how concentrated the empty space is in that gap.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				points []float64
				err    error
			)
			if len(args) > 0 {
				points, err = parsePositions(args)
			} else {
				points, err = readPositions(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			u, err := spread.Uniformity(points)
			if err != nil {
				return err
			}
			gaps, err := spread.Gaps(points)
			if err != nil {
				return err
			}
			c, err := spread.Concentration(gaps)
			if err != nil {
				return err
			}
			var widest float64
			for _, g := range gaps {
				widest = max(widest, g)
			}
			a.logger.Debug("scored", "points", len(points))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "points:            %d\n", len(points))
			fmt.Fprintf(out, "uniformity:        %.6f\n", u)
			fmt.Fprintf(out, "widest_gap:        %.6f\n", widest)
			fmt.Fprintf(out, "gap_concentration: %.6f\n", c)

			return nil
		},
	}
}

func parsePositions(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func readPositions(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	return parsePositions(fields)
}
