// Package oracle adapts an external (or embedded) SAT solver to the
// encoder/CEGAR driver's needs: serialize a CNF, invoke a solver,
// parse its DIMACS model back into an edge-truth assignment.
package oracle

import (
	"context"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
)

// Status classifies the outcome of one Solve call into the same three
// cases gini distinguishes (sat/unknown/unsat). The numeric values are
// this package's own (Satisfiable is 0), not gini's 1/0/-1.
type Status int

const (
	Satisfiable Status = iota
	Unsatisfiable
	Unknown
)

// Assignment maps a variable id to its truth value. Variables absent
// from the map are implicitly false.
type Assignment map[int]bool

// Value returns the assignment for v, false if v is unassigned.
func (a Assignment) Value(v int) bool {
	return a[v]
}

// Stats holds solver-reported statistics, collected only when
// requested: the accumulated CPU time summed out of "c CPU time"
// comment lines, and every comment line verbatim for callers that
// want the raw detail.
type Stats struct {
	CPUTimeSeconds float64
	Comments       []string
}

// Result is the outcome of one Solve call.
type Result struct {
	Status     Status
	Assignment Assignment
	Stats      *Stats
}

// OracleError reports that the solver process could not be spawned,
// crashed, or emitted output that could not be parsed. It is always
// fatal: the CEGAR driver does not retry.
type OracleError struct {
	Reason string
	Cause  error
}

func (e *OracleError) Error() string {
	if e.Cause != nil {
		return "sat oracle: " + e.Reason + ": " + e.Cause.Error()
	}
	return "sat oracle: " + e.Reason
}

func (e *OracleError) Unwrap() error { return e.Cause }

// Oracle invokes a SAT solver over a CNF formula.
type Oracle interface {
	// Solve returns the satisfiability outcome for f. If ctx is
	// cancelled before or during the call, Solve must abort and
	// return ctx.Err() (possibly wrapped).
	Solve(ctx context.Context, f *cnf.Formula, collectStats bool) (*Result, error)
}
