// Command graphkit explores weighted undirected networks: statistics,
// depth-first and breadth-first path search, Dijkstra distance tables and
// Graphviz rendering.
//
// Usage:
//
//	graphkit demo
//	graphkit --graph roads.yaml dijkstra --source Lviv --to Kharkiv
//	graphkit render --highlight-from Dnipro --highlight-to Lviv --out roads.dot
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
