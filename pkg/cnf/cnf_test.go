package cnf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDIMACSHeader(t *testing.T) {
	f := New(3)
	f.Add(1, -2)
	f.Add(2, 3, -1)

	var buf bytes.Buffer
	require.NoError(t, f.WriteDIMACS(&buf))

	assert.Equal(t, "p cnf 3 2\n1 -2 0\n2 3 -1 0\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	type tc struct {
		Name    string
		NumVars int
		Clauses []Clause
	}

	for _, tt := range []tc{
		{Name: "empty", NumVars: 4, Clauses: nil},
		{Name: "single unit clause", NumVars: 1, Clauses: []Clause{{1}}},
		{
			Name:    "mixed",
			NumVars: 5,
			Clauses: []Clause{{1, -2, 3}, {-1}, {2, 4, -5}},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			f := New(tt.NumVars)
			for _, c := range tt.Clauses {
				f.Add(c...)
			}

			var buf bytes.Buffer
			require.NoError(t, f.WriteDIMACS(&buf))

			parsed, err := ParseDIMACS(&buf)
			require.NoError(t, err)

			assert.Equal(t, f.NumVars, parsed.NumVars)
			assert.Equal(t, f.Clauses, parsed.Clauses)
		})
	}
}

func TestAddRejectsZeroLiteral(t *testing.T) {
	f := New(2)
	assert.Panics(t, func() { f.Add(1, 0) })
}

func TestAddRejectsOutOfRangeLiteral(t *testing.T) {
	f := New(2)
	assert.Panics(t, func() { f.Add(3) })
}
