package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspread/sketch"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	logger *slog.Logger
	cfg    sketch.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "spread",
		Short: "Sample, score and render the spread sequence on a circle",
		Long: `spread maps indices 0, 1, 2, ... to positions on a circle so that every
new position lands far from the previous ones. The subcommands print the
sequence with its running statistics, score arbitrary position sets and
render the sketch as SVG.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML sketch config (defaults when empty)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logFormatAuto, "log format: auto, text, json")

	root.AddCommand(
		newSampleCmd(a),
		newScoreCmd(a),
		newRenderCmd(a),
		newRunCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup builds the logger and loads the config before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	a.cfg = sketch.DefaultConfig()
	if a.configPath != "" {
		if a.cfg, err = sketch.LoadConfigFile(a.configPath); err != nil {
			return err
		}
		a.logger.Debug("config loaded", "path", a.configPath)
	}

	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective sketch config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
