package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModelSatisfiable(t *testing.T) {
	output := "c a comment\ns SATISFIABLE\nv 1 -2 3 0\nc CPU time: 0.012 s\n"

	status, assignment, stats, sawOutcome := parseModel(output, true)

	assert.True(t, sawOutcome)
	assert.Equal(t, Satisfiable, status)
	assert.Equal(t, Assignment{1: true, 2: false, 3: true}, assignment)
	assert.InDelta(t, 0.012, stats.CPUTimeSeconds, 1e-9)
	assert.Contains(t, stats.Comments, "a comment")
}

func TestParseModelUnsatisfiable(t *testing.T) {
	status, assignment, _, sawOutcome := parseModel("s UNSATISFIABLE\n", false)

	assert.True(t, sawOutcome)
	assert.Equal(t, Unsatisfiable, status)
	assert.Nil(t, assignment)
}

func TestParseModelMultipleVLines(t *testing.T) {
	output := "s SATISFIABLE\nv 1 2\nv -3 0\n"

	_, assignment, _, _ := parseModel(output, false)

	assert.Equal(t, Assignment{1: true, 2: true, 3: false}, assignment)
}

func TestParseModelNoOutcomeLine(t *testing.T) {
	_, _, _, sawOutcome := parseModel("garbage\n", false)
	assert.False(t, sawOutcome)
}

func TestParseCPUTimeVariants(t *testing.T) {
	type tc struct {
		Name    string
		Comment string
		WantOK  bool
		WantVal float64
	}

	for _, tt := range []tc{
		{Name: "colon", Comment: "CPU time: 1.5", WantOK: true, WantVal: 1.5},
		{Name: "double space", Comment: "CPU time  : 0.25 s", WantOK: true, WantVal: 0.25},
		{Name: "unrelated", Comment: "restarts: 3", WantOK: false},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			v, ok := parseCPUTime(tt.Comment)
			assert.Equal(t, tt.WantOK, ok)
			if tt.WantOK {
				assert.InDelta(t, tt.WantVal, v, 1e-9)
			}
		})
	}
}
