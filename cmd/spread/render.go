package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspread/render"
	"github.com/katalvlaran/lvspread/sketch"
)

// stdoutTarget makes render write its single frame to stdout.
const stdoutTarget = "-"

func newRenderCmd(a *app) *cobra.Command {
	var (
		steps, frames, every int
		out, head, tail      string
		title                string
		gen                  generatorFlags
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render sketch frames as SVG",
		Long: `render advances the sketch --steps times and draws a frame, then draws
--frames-1 further frames every --every steps. With several frames --out
must be a printf pattern such as frame-%04d.svg.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 0 || frames < 1 || every < 1 {
				return fmt.Errorf("need --steps >= 0, --frames >= 1, --every >= 1")
			}
			if frames > 1 && !strings.Contains(out, "%") {
				return fmt.Errorf("--out %q must be a pattern like frame-%%04d.svg for %d frames", out, frames)
			}
			palette, err := render.ParsePalette(head, tail)
			if err != nil {
				return err
			}
			r, err := render.NewSVG(a.cfg, render.WithPalette(palette), render.WithTitle(title))
			if err != nil {
				return err
			}
			tr, err := gen.tracker()
			if err != nil {
				return err
			}

			snaps := make([]sketch.Snapshot, 0, frames)
			advance := steps
			for f := 0; f < frames; f++ {
				for i := 0; i < advance; i++ {
					if _, err := tr.Step(); err != nil {
						return err
					}
				}
				snaps = append(snaps, tr.Snapshot())
				advance = every
			}

			opener := func(i int) (io.WriteCloser, error) {
				if out == stdoutTarget {
					return nopCloser{cmd.OutOrStdout()}, nil
				}
				name := out
				if frames > 1 {
					name = fmt.Sprintf(out, i)
				}
				return os.Create(name)
			}
			if err := r.Frames(cmd.Context(), snaps, opener); err != nil {
				return err
			}
			a.logger.Info("rendered", "frames", len(snaps), "out", out,
				"last_iteration", snaps[len(snaps)-1].Iteration)

			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 64, "steps before the first frame")
	cmd.Flags().IntVar(&frames, "frames", 1, "number of frames")
	cmd.Flags().IntVar(&every, "every", 1, "steps between frames")
	cmd.Flags().StringVarP(&out, "out", "o", stdoutTarget, "output file, printf pattern, or - for stdout")
	cmd.Flags().StringVar(&head, "head", "#ffffff", "colour of the newest trail point")
	cmd.Flags().StringVar(&tail, "tail", "#1d3557", "colour of the oldest trail point")
	cmd.Flags().StringVar(&title, "title", "spread", "SVG document title")
	cmd.Flags().StringVar(&gen.name, "generator", generatorSpread, "position source: spread or stride")
	cmd.Flags().Float64Var(&gen.stride, "stride", 0.4, "step of the stride generator, in (0,1)")

	return cmd
}

// nopCloser keeps render from closing stdout.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
