// Package metrics exposes CEGAR solve statistics as Prometheus
// gauges, grounded on the teacher's pkg/metrics/metrics.go: a fixed
// set of package-level collectors registered once by Register and set
// from already-computed state (the gauges by UpdateFromStats,
// SolvesTotal by its caller) rather than computed on scrape.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Me8mer/Slitherinc/pkg/cegar"
)

// To add new metrics:
// 1. Register new metrics in Register() below.
// 2. Set them from a Driver's Stats in UpdateFromStats.
var (
	cegarIterations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "slither_cegar_iterations",
			Help: "Number of SAT-oracle invocations in the most recent solve.",
		},
	)

	cegarLastComponentCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "slither_cegar_last_component_count",
			Help: "Number of disjoint loop components found in the final CEGAR iteration of the most recent solve.",
		},
	)

	cegarRefinementRounds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "slither_cegar_refinement_rounds",
			Help: "Number of iterations in the most recent solve whose model had more than one loop component and required a blocking-clause refinement.",
		},
	)

	oracleCPUTimeSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "slither_oracle_cpu_time_seconds",
			Help: "Cumulative SAT oracle CPU time, summed across every iteration of the most recent solve.",
		},
	)

	// SolvesTotal is exported since it is not handled by
	// UpdateFromStats: the caller increments it once per CLI
	// invocation, independent of any one solve's Stats.
	SolvesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slither_solves_total",
			Help: "Monotonic count of solve invocations handled by this process.",
		},
	)
)

// Register registers every collector in this package with the default
// Prometheus registry. Call once before serving /metrics.
func Register() {
	prometheus.MustRegister(cegarIterations)
	prometheus.MustRegister(cegarLastComponentCount)
	prometheus.MustRegister(cegarRefinementRounds)
	prometheus.MustRegister(oracleCPUTimeSeconds)
	prometheus.MustRegister(SolvesTotal)
}

// UpdateFromStats sets the solve-session gauges from one Driver's
// accumulated Stats (pkg/cegar/driver.go), overwriting whatever the
// previous solve in this process left behind.
func UpdateFromStats(stats cegar.Stats) {
	cegarIterations.Set(float64(stats.Iterations))
	oracleCPUTimeSeconds.Set(stats.OracleCPUTimeSeconds)

	if n := len(stats.ComponentCounts); n > 0 {
		cegarLastComponentCount.Set(float64(stats.ComponentCounts[n-1]))
	} else {
		cegarLastComponentCount.Set(0)
	}

	refinements := 0
	for _, count := range stats.ComponentCounts {
		if count > 1 {
			refinements++
		}
	}
	cegarRefinementRounds.Set(float64(refinements))
}
