package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Me8mer/Slitherinc/pkg/cegar"
)

func TestUpdateFromStatsSetsGauges(t *testing.T) {
	stats := cegar.Stats{
		Iterations:           3,
		ComponentCounts:      []int{2, 2, 1},
		OracleCPUTimeSeconds: 1.25,
	}

	UpdateFromStats(stats)

	assert.Equal(t, float64(3), testutil.ToFloat64(cegarIterations))
	assert.Equal(t, float64(1), testutil.ToFloat64(cegarLastComponentCount))
	assert.Equal(t, float64(2), testutil.ToFloat64(cegarRefinementRounds))
	assert.Equal(t, 1.25, testutil.ToFloat64(oracleCPUTimeSeconds))
}

func TestUpdateFromStatsZeroIterationsClearsLastComponentCount(t *testing.T) {
	UpdateFromStats(cegar.Stats{Iterations: 0})

	assert.Equal(t, float64(0), testutil.ToFloat64(cegarLastComponentCount))
	assert.Equal(t, float64(0), testutil.ToFloat64(cegarRefinementRounds))
}
