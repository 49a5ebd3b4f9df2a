package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/internal/config"
	"github.com/katalvlaran/graphkit/internal/logging"
	"github.com/katalvlaran/graphkit/report"
)

// app carries per-invocation state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// flag values; empty means "keep the environment value"
	graphFile string
	logLevel  string
	logFormat string
	noColor   bool

	cfg   config.Config
	log   *zap.Logger
	graph *core.Graph
	title string
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		defer func() { _ = a.log.Sync() }()
	}
	if err == nil {
		return 0
	}
	if a.log != nil {
		a.log.Error("command failed", zap.Error(err))
	} else {
		fmt.Fprintf(stderr, "graphkit: %v\n", err)
	}
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphkit",
		Short: "Explore weighted undirected networks",
		Long: `graphkit loads a weighted undirected network and runs path searches on it.

Without --graph the built-in network of seven Ukrainian cities is used.

Environment:
  GRAPHKIT_LOG_LEVEL   debug|info|warn|error (default info)
  GRAPHKIT_LOG_FORMAT  console|json (default console)
  GRAPHKIT_GRAPH_FILE  YAML network file
  GRAPHKIT_NO_COLOR    disable styled output

Flags override the environment.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.graphFile, "graph", "", "YAML network file (default: built-in sample)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console|json")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		a.statsCmd(),
		a.dfsCmd(),
		a.bfsCmd(),
		a.dijkstraCmd(),
		a.renderCmd(),
		a.exportCmd(),
		a.demoCmd(),
	)

	return root
}

// setup resolves configuration, builds the logger and loads the network.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.graphFile != "" {
		cfg.Graph.File = a.graphFile
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if a.noColor {
		cfg.Output.NoColor = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.Logging, a.stderr, zap.String("cmd", cmd.Name()))
	if err != nil {
		return err
	}

	network := builder.Sample()
	if cfg.Graph.File != "" {
		if network, err = builder.LoadNetworkFile(cfg.Graph.File); err != nil {
			return err
		}
	}
	a.graph, err = builder.BuildGraph(nil, builder.FromNetwork(network))
	if err != nil {
		return err
	}
	a.title = network.Title
	if a.title == "" {
		a.title = "network"
	}

	a.log.Debug("network loaded",
		zap.String("title", a.title),
		zap.String("file", cfg.Graph.File),
		zap.Int("nodes", a.graph.VertexCount()),
		zap.Int("edges", a.graph.EdgeCount()),
	)
	return nil
}

// printer returns a report printer honouring the colour setting.
func (a *app) printer() *report.Printer {
	if a.cfg.Output.NoColor {
		return report.New(a.stdout, report.WithPlain())
	}
	return report.New(a.stdout)
}
