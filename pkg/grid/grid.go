// Package grid builds the edge/point/cell graph that the constraint
// encoder and loop analyzer operate over.
package grid

// Orientation distinguishes horizontal from vertical edges.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Edge is a unit segment between two adjacent lattice points. Its ID
// is the positive integer identifier of the Boolean variable "edge is
// in the loop".
type Edge struct {
	ID          int
	Orientation Orientation
}

// Cell is a unit square at (Row, Col) bounded by four edges, shared
// by identity with neighboring cells and with the point lattice.
type Cell struct {
	Row, Col          int
	Up, Right, Down, Left *Edge
	Clue              *int
}

// Edges returns the cell's four bounding edges in a fixed order:
// up, right, down, left.
func (c *Cell) Edges() [4]*Edge {
	return [4]*Edge{c.Up, c.Right, c.Down, c.Left}
}

// Point is a lattice intersection. Incident edges absent in a
// direction that would leave the grid are nil.
type Point struct {
	Row, Col          int
	Up, Right, Down, Left *Edge
}

// Edges returns the point's incident edges, omitting any that are
// nil (boundary and corner points have fewer than four).
func (p *Point) Edges() []*Edge {
	all := [4]*Edge{p.Up, p.Right, p.Down, p.Left}
	out := make([]*Edge, 0, 4)
	for _, e := range all {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Grid is the fully wired edge/point/cell graph for one solve
// session, along with the registry that minted the edge variable ids.
type Grid struct {
	Height, Width int

	// HEdges has Height+1 rows and Width columns; HEdges[i][j] is the
	// horizontal edge between point (i,j) and point (i,j+1).
	HEdges [][]*Edge

	// VEdges has Height rows and Width+1 columns; VEdges[i][j] is the
	// vertical edge between point (i,j) and point (i+1,j).
	VEdges [][]*Edge

	Cells  [][]*Cell
	Points [][]*Point

	Registry *Registry
}

// NumVars returns the number of SAT variables in the grid, equal to
// the number of edges: no auxiliary variables are required by the
// core encoding.
func (g *Grid) NumVars() int {
	return g.Registry.Count()
}

// Build validates instance and constructs the edge, cell, and point
// grids for it. instance[row][col] is nil for an unclued cell or
// points at a clue in {0,1,2,3}.
//
// Identifiers are assigned eagerly, in a deterministic traversal order
// (horizontal grid row-major, then vertical grid row-major), following
// the spec's two-pass shape: mint all edge ids first, then wire cell
// and point cross-references to the already-minted edges.
func Build(instance [][]*int) (*Grid, error) {
	height := len(instance)
	if height == 0 {
		return nil, configErrorf("grid must have at least one row")
	}
	width := len(instance[0])
	if width == 0 {
		return nil, configErrorf("grid must have at least one column")
	}
	for i, row := range instance {
		if len(row) != width {
			return nil, configErrorf("row %d has %d columns, want %d", i, len(row), width)
		}
	}
	for i, row := range instance {
		for j, clue := range row {
			if clue != nil && (*clue < 0 || *clue > 3) {
				return nil, configErrorf("clue %d at (%d,%d) out of range [0,3]", *clue, i, j)
			}
		}
	}

	reg := NewRegistry()

	hEdges := make([][]*Edge, height+1)
	for i := range hEdges {
		hEdges[i] = make([]*Edge, width)
		for j := range hEdges[i] {
			hEdges[i][j] = &Edge{ID: reg.Fresh(), Orientation: Horizontal}
		}
	}

	vEdges := make([][]*Edge, height)
	for i := range vEdges {
		vEdges[i] = make([]*Edge, width+1)
		for j := range vEdges[i] {
			vEdges[i][j] = &Edge{ID: reg.Fresh(), Orientation: Vertical}
		}
	}

	cells := make([][]*Cell, height)
	for row := 0; row < height; row++ {
		cells[row] = make([]*Cell, width)
		for col := 0; col < width; col++ {
			cells[row][col] = &Cell{
				Row:   row,
				Col:   col,
				Up:    hEdges[row][col],
				Right: vEdges[row][col+1],
				Down:  hEdges[row+1][col],
				Left:  vEdges[row][col],
				Clue:  instance[row][col],
			}
		}
	}

	points := make([][]*Point, height+1)
	for i := 0; i <= height; i++ {
		points[i] = make([]*Point, width+1)
		for j := 0; j <= width; j++ {
			p := &Point{Row: i, Col: j}
			if i > 0 {
				p.Up = vEdges[i-1][j]
			}
			if i < height {
				p.Down = vEdges[i][j]
			}
			if j > 0 {
				p.Left = hEdges[i][j-1]
			}
			if j < width {
				p.Right = hEdges[i][j]
			}
			points[i][j] = p
		}
	}

	return &Grid{
		Height:   height,
		Width:    width,
		HEdges:   hEdges,
		VEdges:   vEdges,
		Cells:    cells,
		Points:   points,
		Registry: reg,
	}, nil
}
