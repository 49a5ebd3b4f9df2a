// Package graphkit is a small toolkit for weighted undirected graphs: build a
// network, search it for paths, and compute shortest distances.
//
// What is inside?
//
//	core/     - Graph, Edge and Path types; thread-safe vertex and edge mutation
//	builder/  - declarative constructors, YAML network files, the sample road network
//	dfs/      - depth-first path search between two vertices
//	bfs/      - breadth-first path search (fewest edges) and full traversal
//	dijkstra/ - single-source shortest distances with an O(V²) linear scan
//	render/   - Graphviz DOT output with optional path highlighting
//	report/   - terminal reports for statistics, paths and distance tables
//
// Quick start:
//
//	g, err := builder.BuildGraph(nil, builder.FromNetwork(builder.Sample()))
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, _ := bfs.Path(g, "Dnipro", "Lviv")
//	fmt.Println(p) // Dnipro → Uman → Lviv
//
//	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("Lviv"))
//	fmt.Println(dist["Kharkiv"]) // 1026
//
// Weights are float64 and must be finite and non-negative. Unreachable
// vertices have distance +Inf. Neighbour iteration is in ascending ID order,
// so every algorithm here is deterministic.
//
// The graphkit command (cmd/graphkit) exposes the same operations on the
// command line.
package graphkit
