package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/render"
)

// demo endpoints match the built-in sample network.
const (
	demoFrom   = "Dnipro"
	demoTo     = "Lviv"
	demoSource = "Lviv"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node and edge counts, total weight and degrees",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.printer().Stats(a.title, a.graph.Stats())
		},
	}
}

func (a *app) dfsCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "dfs --from X --to Y",
		Short: "Find some path with depth-first search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDFS(cmd, from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().StringVar(&to, "to", "", "goal node")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) bfsCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "bfs --from X --to Y",
		Short: "Find a path with the fewest edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBFS(cmd, from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().StringVar(&to, "to", "", "goal node")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) dijkstraCmd() *cobra.Command {
	var source, to string
	cmd := &cobra.Command{
		Use:   "dijkstra --source X [--to Y]",
		Short: "Print shortest distances from a source node",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runDijkstra(source, to)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source node")
	cmd.Flags().StringVar(&to, "to", "", "also print the shortest path to this node")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	var out, from, to, title string
	cmd := &cobra.Command{
		Use:   "render [--out file.dot] [--highlight-from X --highlight-to Y]",
		Short: "Write the network as a Graphviz DOT document",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if title == "" {
				title = a.title
			}
			if (from == "") != (to == "") {
				return errors.New("render: --highlight-from and --highlight-to must be used together")
			}
			opts := []render.Option{render.WithTitle(title)}
			if from != "" {
				p, err := a.shortestPath(from, to)
				if err != nil {
					return err
				}
				opts = append(opts, render.WithHighlight(p))
			}

			c := render.NewCanvas(opts...)
			if err := c.Draw(a.graph); err != nil {
				return err
			}
			return a.writeOut(out, func(w io.Writer) error {
				_, err := c.WriteTo(w)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.Flags().StringVar(&from, "highlight-from", "", "highlight the shortest path from this node")
	cmd.Flags().StringVar(&to, "highlight-to", "", "highlight the shortest path to this node")
	cmd.Flags().StringVar(&title, "title", "", "graph label (default: network title)")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [--out file.yaml]",
		Short: "Write the loaded network as a YAML network file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n := builder.NetworkOf(a.graph, a.title)
			return a.writeOut(out, n.WriteYAML)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print stats, DFS and BFS from Dnipro to Lviv, and distances from Lviv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.printer().Stats(a.title, a.graph.Stats()); err != nil {
				return err
			}
			if err := a.runDFS(cmd, demoFrom, demoTo); err != nil {
				return err
			}
			if err := a.runBFS(cmd, demoFrom, demoTo); err != nil {
				return err
			}
			return a.runDijkstra(demoSource, "")
		},
	}
}

func (a *app) runDFS(cmd *cobra.Command, from, to string) error {
	p, err := dfs.Path(a.graph, from, to,
		dfs.WithContext(cmd.Context()),
		dfs.WithOnVisit(func(id string, depth int) error {
			a.log.Debug("dfs visit", zap.String("node", id), zap.Int("depth", depth))
			return nil
		}),
	)
	if err != nil {
		return err
	}
	return a.printPath("dfs", from, to, p)
}

func (a *app) runBFS(cmd *cobra.Command, from, to string) error {
	p, err := bfs.Path(a.graph, from, to,
		bfs.WithContext(cmd.Context()),
		bfs.WithOnVisit(func(id string, depth int) error {
			a.log.Debug("bfs visit", zap.String("node", id), zap.Int("depth", depth))
			return nil
		}),
	)
	if err != nil {
		return err
	}
	return a.printPath("bfs", from, to, p)
}

func (a *app) runDijkstra(source, to string) error {
	dist, prev, err := dijkstra.Dijkstra(a.graph,
		dijkstra.Source(source),
		dijkstra.WithReturnPath(),
		dijkstra.WithOnSettle(func(id string, d float64) {
			a.log.Debug("dijkstra settle", zap.String("node", id), zap.Float64("dist", d))
		}),
	)
	if err != nil {
		return err
	}

	pr := a.printer()
	if err = pr.Distances(source, dist); err != nil {
		return err
	}
	if to == "" {
		return nil
	}
	if !a.graph.HasVertex(to) {
		return fmt.Errorf("dijkstra: target %w: %q", core.ErrVertexNotFound, to)
	}

	return pr.Path(fmt.Sprintf("dijkstra %s → %s", source, to), dijkstra.PathTo(prev, source, to), dist[to])
}

// shortestPath returns the Dijkstra path between two nodes, nil if unreachable.
func (a *app) shortestPath(from, to string) (core.Path, error) {
	if !a.graph.HasVertex(to) {
		return nil, fmt.Errorf("render: target %w: %q", core.ErrVertexNotFound, to)
	}
	_, prev, err := dijkstra.Dijkstra(a.graph, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	p := dijkstra.PathTo(prev, from, to)
	if !p.Found() {
		a.log.Warn("nothing to highlight", zap.String("from", from), zap.String("to", to))
	}
	return p, nil
}

func (a *app) printPath(algo, from, to string, p core.Path) error {
	var cost float64
	if p.Found() {
		var err error
		if cost, err = p.Cost(a.graph); err != nil {
			return err
		}
	}
	a.log.Info("search finished", zap.String("algo", algo), zap.Bool("found", p.Found()), zap.Int("hops", p.Hops()))

	return a.printer().Path(fmt.Sprintf("%s %s → %s", algo, from, to), p, cost)
}

// writeOut sends output to path, or to stdout when path is empty or "-".
func (a *app) writeOut(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(a.stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	a.log.Info("wrote file", zap.String("path", path))
	return nil
}
