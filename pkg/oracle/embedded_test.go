package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
)

func TestEmbeddedSolveSatisfiable(t *testing.T) {
	f := cnf.New(2)
	f.Add(1, 2)
	f.Add(-1, -2)

	o := NewEmbedded(nil)
	result, err := o.Solve(context.Background(), f, false)
	require.NoError(t, err)
	require.Equal(t, Satisfiable, result.Status)

	// Exactly one of the two variables must be true.
	assert.NotEqual(t, result.Assignment.Value(1), result.Assignment.Value(2))
}

func TestEmbeddedSolveUnsatisfiable(t *testing.T) {
	f := cnf.New(1)
	f.Add(1)
	f.Add(-1)

	o := NewEmbedded(nil)
	result, err := o.Solve(context.Background(), f, false)
	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, result.Status)
}

func TestEmbeddedSolveRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewEmbedded(nil)
	_, err := o.Solve(ctx, cnf.New(1), false)
	require.Error(t, err)
}
