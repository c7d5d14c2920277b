// Package encoder emits the CNF clauses that constrain a Slitherlink
// grid: per-cell clue constraints and per-point vertex-degree
// constraints. It does not encode subtour elimination; that is the
// CEGAR driver's job (pkg/cegar).
package encoder

import (
	"fmt"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
	"github.com/Me8mer/Slitherinc/pkg/grid"
)

// EncodeBaseline builds the baseline CNF for g: clue constraints in
// row-major cell order, then vertex-degree constraints in row-major
// point order. This ordering is part of the spec's reproducibility
// guarantee and must not change.
func EncodeBaseline(g *grid.Grid) *cnf.Formula {
	f := cnf.New(g.NumVars())
	EncodeClues(f, g)
	EncodeVertices(f, g)
	return f
}

// EncodeClues emits, for every clued cell, the clause family pinning
// its in-loop edge count to exactly its clue value.
func EncodeClues(f *cnf.Formula, g *grid.Grid) {
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Clue == nil {
				continue
			}
			edges := cell.Edges()
			encodeClue(f, *cell.Clue, edgeIDs(edges[:]))
		}
	}
}

func edgeIDs(edges []*grid.Edge) []int {
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	return ids
}

// encodeClue dispatches on the clue value, one case per value in
// {0,1,2,3}, each handled by its own emit function. This echoes the
// teacher's one-emitter-per-constraint-kind idea
// (solver.Constraint's Mandatory/Prohibited/Dependency/Conflict) with
// plain functions rather than one type per kind.
func encodeClue(f *cnf.Formula, value int, edges []int) {
	switch value {
	case 0:
		encodeClueZero(f, edges)
	case 1:
		encodeClueOne(f, edges)
	case 2:
		encodeClueTwo(f, edges)
	case 3:
		encodeClueThree(f, edges)
	default:
		panic(fmt.Sprintf("encoder: clue %d out of range [0,3]", value))
	}
}

// encodeClueZero forbids every edge of the cell: exactly zero in-loop.
func encodeClueZero(f *cnf.Formula, edges []int) {
	for _, e := range edges {
		f.Add(-e)
	}
}

// encodeClueOne requires exactly one in-loop edge: at-least-one plus
// every pairwise at-most-one.
func encodeClueOne(f *cnf.Formula, edges []int) {
	f.Add(edges...)
	forEachPair(edges, func(a, b int) {
		f.Add(-a, -b)
	})
}

// encodeClueTwo requires exactly two in-loop edges: at-least-one plus
// the zero-or-two encoding, which together pin the count to exactly
// two.
func encodeClueTwo(f *cnf.Formula, edges []int) {
	f.Add(edges...)
	zeroOrTwo(f, edges)
}

// encodeClueThree requires exactly three in-loop edges, expressed as
// the dual of encodeClueOne over negated literals: at-least-one-false
// plus every pairwise at-most-one-false.
func encodeClueThree(f *cnf.Formula, edges []int) {
	negated := make([]int, len(edges))
	for i, e := range edges {
		negated[i] = -e
	}
	f.Add(negated...)
	forEachPair(edges, func(a, b int) {
		f.Add(a, b)
	})
}

// EncodeVertices emits, for every lattice point, the clause family
// forcing its in-loop degree to be 0 or 2.
func EncodeVertices(f *cnf.Formula, g *grid.Grid) {
	for _, row := range g.Points {
		for _, point := range row {
			edges := edgeIDs(point.Edges())
			switch len(edges) {
			case 2:
				// Corner: the two edges are either both in the loop
				// or both out.
				f.Add(-edges[0], edges[1])
				f.Add(edges[0], -edges[1])
			case 3, 4:
				// Edge or interior point: zero-or-two over all
				// incident edges, with no at-least-one clause, so
				// the count is pinned to 0 or 2 rather than exactly
				// 2.
				zeroOrTwo(f, edges)
			default:
				panic(fmt.Sprintf("encoder: point has %d incident edges, want 2, 3, or 4", len(edges)))
			}
		}
	}
}

// zeroOrTwo emits the "either 0 or exactly 2 of S are true" encoding
// described in spec §4.3: a forcing clause per edge (selecting it
// forces at least one other to also be selected) and a triple-block
// clause per unordered triple (no three may be true at once). For
// |S| < 3 no triples exist to block, which is correct since a set of
// fewer than 3 literals cannot itself reach a count of 3 or 4.
func zeroOrTwo(f *cnf.Formula, edges []int) {
	for i, e := range edges {
		others := make([]int, 0, len(edges)-1)
		for j, other := range edges {
			if j != i {
				others = append(others, other)
			}
		}
		f.Add(append([]int{-e}, others...)...)
	}
	forEachTriple(edges, func(a, b, c int) {
		f.Add(-a, -b, -c)
	})
}

func forEachPair(edges []int, fn func(a, b int)) {
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			fn(edges[i], edges[j])
		}
	}
}

func forEachTriple(edges []int, fn func(a, b, c int)) {
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			for k := j + 1; k < len(edges); k++ {
				fn(edges[i], edges[j], edges[k])
			}
		}
	}
}
