// Package cegar implements the counter-example guided iterative
// solver: encode a baseline CNF, invoke a SAT oracle, inspect the
// model for disjoint loops, and add one blocking clause per detected
// loop until a single-loop model is found or the formula becomes
// unsatisfiable.
package cegar

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
	"github.com/Me8mer/Slitherinc/pkg/encoder"
	"github.com/Me8mer/Slitherinc/pkg/grid"
	"github.com/Me8mer/Slitherinc/pkg/looper"
	"github.com/Me8mer/Slitherinc/pkg/oracle"
)

// State is one of the driver's state-machine positions (spec §4.7).
type State int

const (
	Building State = iota
	Solving
	Analyzing
	Refining
	Done
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Solving:
		return "solving"
	case Analyzing:
		return "analyzing"
	case Refining:
		return "refining"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Kind classifies a terminal Outcome.
type Kind int

const (
	Solved Kind = iota
	Unsat
	Errored
)

// Outcome is the result of one Solve call: Solved carries the model
// and the grid it applies to, Unsat and Errored carry nothing but
// their kind (Errored additionally carries Err).
type Outcome struct {
	Kind       Kind
	Assignment oracle.Assignment
	Grid       *grid.Grid
	Err        error
}

// Stats accumulates CEGAR-level statistics across a solve session
// (spec §4.4's "optional statistics", surfaced here as one record per
// session rather than per oracle call). Iterations is always counted;
// ComponentCounts and OracleCPUTimeSeconds are collected only when the
// driver's CollectStats is set.
type Stats struct {
	Iterations           int
	ComponentCounts      []int
	OracleCPUTimeSeconds float64
}

// Driver owns the grid, the CNF, and the running statistics for one
// solve session. Grounded on solver.solver's shape in the teacher
// (a struct holding the SAT handle and the litMapping, with Solve as
// its only public operation), adapted from gini's incremental
// Assume/Test protocol to "re-encode and re-invoke per iteration",
// per spec §4.6/§9.
type Driver struct {
	Oracle       oracle.Oracle
	CollectStats bool

	logger *logrus.Entry
	state  State
	stats  Stats
}

// NewDriver returns a Driver that solves using o. A nil logger falls
// back to the standard logrus logger.
func NewDriver(o oracle.Oracle, collectStats bool, logger *logrus.Entry) *Driver {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Driver{Oracle: o, CollectStats: collectStats, logger: logger, state: Building}
}

// State returns the driver's current state-machine position.
func (d *Driver) State() State { return d.state }

// Stats returns the statistics accumulated so far. Apart from
// Iterations, the fields stay empty unless CollectStats is true.
func (d *Driver) Stats() Stats { return d.stats }

// Solve builds the grid and baseline CNF for instance, then iterates
// oracle calls and blocking-clause refinement until a single-loop
// model is found, the formula is proved unsatisfiable, or ctx is
// cancelled or the oracle errors.
func (d *Driver) Solve(ctx context.Context, instance [][]*int) *Outcome {
	d.state = Building
	g, err := grid.Build(instance)
	if err != nil {
		d.state = Done
		return &Outcome{Kind: Errored, Err: err}
	}

	f := encoder.EncodeBaseline(g)
	d.state = Solving

	for {
		if err := ctx.Err(); err != nil {
			// Abort before the next SAT invocation, per spec §5.
			d.state = Done
			return &Outcome{Kind: Errored, Err: err}
		}

		d.stats.Iterations++
		d.logger.Debugf("cegar: iteration %d, %d clauses", d.stats.Iterations, f.Len())

		result, err := d.Oracle.Solve(ctx, f, d.CollectStats)
		if err != nil {
			d.state = Done
			return &Outcome{Kind: Errored, Err: err}
		}
		if d.CollectStats && result.Stats != nil {
			d.stats.OracleCPUTimeSeconds += result.Stats.CPUTimeSeconds
		}

		switch result.Status {
		case oracle.Unsatisfiable:
			d.state = Done
			d.logger.Debug("cegar: unsatisfiable")
			return &Outcome{Kind: Unsat}

		case oracle.Satisfiable:
			d.state = Analyzing
			components := looper.Components(result.Assignment, g)
			if d.CollectStats {
				d.stats.ComponentCounts = append(d.stats.ComponentCounts, len(components))
			}

			if len(components) <= 1 {
				d.state = Done
				d.logger.Debugf("cegar: solved after %d iterations", d.stats.Iterations)
				return &Outcome{Kind: Solved, Assignment: result.Assignment, Grid: g}
			}

			d.state = Refining
			d.logger.Debugf("cegar: %d disjoint loops, adding blocking clauses", len(components))
			for _, component := range components {
				blockingClause(f, component)
			}
			d.state = Solving

		default:
			d.state = Done
			return &Outcome{Kind: Errored, Err: internalErrorf("oracle returned undetermined status with no error")}
		}
	}
}

// blockingClause appends the disjunction of -e for every edge e in
// component, forbidding this exact set of true edges from recurring
// together as a component in a later model (spec §4.6 step f). One
// clause is added per detected component, per spec §9's instruction
// to prefer the most informative variant.
func blockingClause(f *cnf.Formula, component []*grid.Edge) {
	lits := make([]int, len(component))
	for i, e := range component {
		lits[i] = -e.ID
	}
	f.Add(lits...)
}
