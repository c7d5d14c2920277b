package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
)

func shellOracle(script string) *External {
	return NewExternal("/bin/sh", []string{"-c", script, "sh"}, nil)
}

func TestExternalSolveSatisfiable(t *testing.T) {
	o := shellOracle(`printf 's SATISFIABLE\nv 1 -2 0\n'`)

	result, err := o.Solve(context.Background(), cnf.New(2), false)
	require.NoError(t, err)
	assert.Equal(t, Satisfiable, result.Status)
	assert.True(t, result.Assignment.Value(1))
	assert.False(t, result.Assignment.Value(2))
}

func TestExternalSolveUnsatisfiable(t *testing.T) {
	o := shellOracle(`printf 's UNSATISFIABLE\n'; exit 20`)

	result, err := o.Solve(context.Background(), cnf.New(1), false)
	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, result.Status)
}

func TestExternalSolveFallsBackToExitCode(t *testing.T) {
	o := shellOracle(`exit 10`)

	result, err := o.Solve(context.Background(), cnf.New(1), false)
	require.NoError(t, err)
	assert.Equal(t, Satisfiable, result.Status)
}

func TestExternalSolveErrorsOnUnrecognizedFailure(t *testing.T) {
	o := shellOracle(`echo 'boom' >&2; exit 1`)

	_, err := o.Solve(context.Background(), cnf.New(1), false)
	require.Error(t, err)
	var oracleErr *OracleError
	require.ErrorAs(t, err, &oracleErr)
}

func TestExternalSolveCollectsStats(t *testing.T) {
	o := shellOracle(`printf 's SATISFIABLE\nv 1 0\nc CPU time: 0.5\n'`)

	result, err := o.Solve(context.Background(), cnf.New(1), true)
	require.NoError(t, err)
	require.NotNil(t, result.Stats)
	assert.InDelta(t, 0.5, result.Stats.CPUTimeSeconds, 1e-9)
}

func TestExternalSolveCancellation(t *testing.T) {
	o := shellOracle(`sleep 5; printf 's SATISFIABLE\n'`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Solve(ctx, cnf.New(1), false)
	require.Error(t, err)
}
