// SPDX-License-Identifier: MIT

// Package commands implements the lvstride subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstride/internal/config"
	"github.com/katalvlaran/lvstride/internal/render"
	"github.com/katalvlaran/lvstride/internal/telemetry"
)

// Version is the build version, set with -ldflags "-X ...commands.Version=...".
var Version = "dev"

var (
	errUnknownOp    = errors.New("unknown op")
	errUnknownKind  = errors.New("unknown graph kind")
	errMaskLength   = errors.New("mask length must match the number of elements")
	errMaskValue    = errors.New("mask values must be in 0..255")
	errZeroStride   = errors.New("stride must be non-zero")
	errGraphFile    = errors.New("invalid graph file")
	errCycleFound   = errors.New("graph has a cycle")
	errNoRingValues = errors.New("no values to push")
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	noColor    bool

	cfg     *config.Config
	log     *slog.Logger
	metrics *telemetry.Metrics
	render  *render.Renderer
}

// NewRootCommand builds the lvstride command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvstride",
		Short: "Strided kernels, circular buffers and compact graphs",
		Long: `lvstride exercises the lvstride library from the command line.

Commands:
  apply     Run a (masked) unary kernel over a strided vector
  ring      Push values through a circular buffer
  toposort  Topologically sort a graph file
  gen       Generate a graph file
  version   Show version information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.dumpMetrics()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default .lvstride.yaml in CWD or $HOME)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.Bool("metrics", config.DefaultOutputMetrics, "Print counters after the command")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newApplyCommand(a),
		newRingCommand(a),
		newToposortCommand(a),
		newGenCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads the config for cmd and builds the logger, counters and renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	cfg, err := config.Load(a.configPath,
		config.WithFlag("log.level", flags.Lookup("log-level")),
		config.WithFlag("output.metrics", flags.Lookup("metrics")),
		config.WithFlag("apply.op", flags.Lookup("op")),
		config.WithFlag("ring.capacity", flags.Lookup("capacity")),
		config.WithFlag("gen.kind", flags.Lookup("kind")),
		config.WithFlag("gen.vertices", flags.Lookup("n")),
		config.WithFlag("gen.probability", flags.Lookup("p")),
		config.WithFlag("gen.seed", flags.Lookup("seed")),
	)
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Output.Color = false
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.metrics = telemetry.New()
	a.render = render.New(a.out, cfg.Output.Color)

	a.log.Debug("config loaded", "command", cmd.Name(), "file", a.configPath, "color", cfg.Output.Color)
	return nil
}

// dumpMetrics prints the counter table when output.metrics is on.
func (a *app) dumpMetrics() error {
	if a.cfg == nil || !a.cfg.Output.Metrics {
		return nil
	}
	samples, err := a.metrics.Snapshot()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.render.Metrics(samples)
	return nil
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "lvstride %s\n", Version)
		},
	}
}
