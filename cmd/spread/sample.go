package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspread/sketch"
)

// Output formats accepted by sample --format.
const (
	formatTable = "table"
	formatCSV   = "csv"
)

var sampleHeader = []string{"index", "position", "distance", "average_distance", "uniformity", "product"}

func newSampleCmd(a *app) *cobra.Command {
	var (
		count  int
		format string
		gen    generatorFlags
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print positions with their running statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("--count %d is negative", count)
			}
			tr, err := gen.tracker()
			if err != nil {
				return err
			}
			rows := make([]sketch.Stats, 0, count)
			for i := 0; i < count; i++ {
				s, err := tr.Step()
				if err != nil {
					return err
				}
				rows = append(rows, s)
			}
			a.logger.Debug("sampled", "generator", gen.name, "count", count)

			switch format {
			case formatTable:
				return writeTable(cmd.OutOrStdout(), rows)
			case formatCSV:
				return writeCSV(cmd.OutOrStdout(), rows)
			}

			return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatCSV)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 16, "number of positions")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table or csv")
	cmd.Flags().StringVar(&gen.name, "generator", generatorSpread, "position source: spread or stride")
	cmd.Flags().Float64Var(&gen.stride, "stride", 0.4, "step of the stride generator, in (0,1)")

	return cmd
}

// row renders one stats line; undefined statistics print as "-".
func row(s sketch.Stats) []string {
	return []string{
		strconv.Itoa(s.Iteration - 1),
		num(s.Current),
		num(s.Distance),
		num(s.AverageDistance),
		num(s.Uniformity),
		num(s.Product()),
	}
}

func num(v float64) string {
	if v == sketch.Undefined {
		return "-"
	}

	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeTable(w io.Writer, rows []sketch.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	line := func(cells []string) {
		for _, c := range cells {
			fmt.Fprint(tw, c, "\t")
		}
		fmt.Fprintln(tw)
	}
	line(sampleHeader)
	for _, s := range rows {
		line(row(s))
	}

	return tw.Flush()
}

func writeCSV(w io.Writer, rows []sketch.Stats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleHeader); err != nil {
		return err
	}
	for _, s := range rows {
		if err := cw.Write(row(s)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
