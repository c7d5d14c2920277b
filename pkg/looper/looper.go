// Package looper analyzes a SAT model for the Slitherlink encoding,
// finding the connected components of the in-loop subgraph induced on
// lattice points. It is consulted by the CEGAR driver after every
// oracle call to decide whether a model describes a single loop or
// must be refined away.
package looper

import "github.com/Me8mer/Slitherinc/pkg/grid"

type point struct{ row, col int }

type neighbor struct {
	edge *grid.Edge
	to   point
}

// Components returns the connected components of the subgraph induced
// by edges that are true under assignment, one entry per component,
// each a slice of the (true) edges belonging to it. Points with no
// true incident edges never start or appear in a component.
//
// The adjacency map is built once from the horizontal and vertical
// edge grids, then each point is visited at most once via an
// iterative depth-first traversal, for overall O(V+E) complexity.
func Components(assignment map[int]bool, g *grid.Grid) [][]*grid.Edge {
	adj := make(map[point][]neighbor)
	addEdge := func(a, b point, e *grid.Edge) {
		adj[a] = append(adj[a], neighbor{edge: e, to: b})
		adj[b] = append(adj[b], neighbor{edge: e, to: a})
	}

	for i, row := range g.HEdges {
		for j, e := range row {
			if assignment[e.ID] {
				addEdge(point{i, j}, point{i, j + 1}, e)
			}
		}
	}
	for i, row := range g.VEdges {
		for j, e := range row {
			if assignment[e.ID] {
				addEdge(point{i, j}, point{i + 1, j}, e)
			}
		}
	}

	visited := make(map[point]bool)
	var components [][]*grid.Edge

	// Row-major traversal start order keeps the result deterministic
	// given a deterministic assignment.
	for i := 0; i <= g.Height; i++ {
		for j := 0; j <= g.Width; j++ {
			start := point{i, j}
			if visited[start] || len(adj[start]) == 0 {
				continue
			}

			seenEdge := make(map[int]bool)
			var comp []*grid.Edge
			stack := []point{start}
			visited[start] = true

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				for _, n := range adj[cur] {
					if !seenEdge[n.edge.ID] {
						seenEdge[n.edge.ID] = true
						comp = append(comp, n.edge)
					}
					if !visited[n.to] {
						visited[n.to] = true
						stack = append(stack, n.to)
					}
				}
			}

			components = append(components, comp)
		}
	}

	return components
}
