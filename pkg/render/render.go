// Package render prints a solved grid as the text diagram described
// in spec §6: points as "*", in-loop horizontal edges as "───",
// in-loop vertical edges as "│", and clue digits in their cells.
package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Me8mer/Slitherinc/pkg/grid"
	"github.com/Me8mer/Slitherinc/pkg/oracle"
)

// Write prints g's solution under assignment to w.
func Write(w io.Writer, g *grid.Grid, assignment oracle.Assignment) error {
	bw := bufio.NewWriter(w)

	for row := 0; row <= g.Height; row++ {
		if err := writePointRow(bw, g, assignment, row); err != nil {
			return err
		}
		if row < g.Height {
			if err := writeCellRow(bw, g, assignment, row); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func writePointRow(bw *bufio.Writer, g *grid.Grid, assignment oracle.Assignment, row int) error {
	for col := 0; col < g.Width; col++ {
		if _, err := bw.WriteString("*"); err != nil {
			return err
		}
		edge := g.HEdges[row][col]
		if assignment.Value(edge.ID) {
			if _, err := bw.WriteString("───"); err != nil {
				return err
			}
		} else {
			if _, err := bw.WriteString("   "); err != nil {
				return err
			}
		}
	}
	_, err := bw.WriteString("*\n")
	return err
}

func writeCellRow(bw *bufio.Writer, g *grid.Grid, assignment oracle.Assignment, row int) error {
	for col := 0; col < g.Width; col++ {
		edge := g.VEdges[row][col]
		if assignment.Value(edge.ID) {
			if _, err := bw.WriteString("│"); err != nil {
				return err
			}
		} else {
			if _, err := bw.WriteString(" "); err != nil {
				return err
			}
		}
		cell := g.Cells[row][col]
		if cell.Clue != nil {
			if _, err := bw.WriteString(" " + strconv.Itoa(*cell.Clue) + " "); err != nil {
				return err
			}
		} else {
			if _, err := bw.WriteString("   "); err != nil {
				return err
			}
		}
	}
	lastEdge := g.VEdges[row][g.Width]
	if assignment.Value(lastEdge.ID) {
		_, err := bw.WriteString("│\n")
		return err
	}
	_, err := bw.WriteString(" \n")
	return err
}
