package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Me8mer/Slitherinc/pkg/grid"
	"github.com/Me8mer/Slitherinc/pkg/oracle"
)

func allBoundaryTrue(g *grid.Grid) oracle.Assignment {
	a := make(oracle.Assignment)
	a[g.HEdges[0][0].ID] = true
	a[g.HEdges[g.Height][0].ID] = true
	a[g.VEdges[0][0].ID] = true
	a[g.VEdges[0][g.Width].ID] = true
	return a
}

func TestWriteProducesCorrectLineCount(t *testing.T) {
	g, err := grid.Build([][]*int{{nil}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, g, allBoundaryTrue(g)))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// 1x1 grid: 2 point rows + 1 cell row.
	require.Len(t, lines, 3)
}

func TestWriteMarksInLoopEdges(t *testing.T) {
	g, err := grid.Build([][]*int{{nil}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, g, allBoundaryTrue(g)))

	out := sb.String()
	require.Contains(t, out, "*───*")
	require.Contains(t, out, "│")
}

func TestWriteShowsClueDigit(t *testing.T) {
	two := 2
	g, err := grid.Build([][]*int{{&two}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, g, oracle.Assignment{}))

	require.Contains(t, sb.String(), "2")
}
