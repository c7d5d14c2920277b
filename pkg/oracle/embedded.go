package oracle

import (
	"bytes"
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
)

// Embedded solves in-process using github.com/go-air/gini instead of
// shelling out. It is an alternate Oracle backend, not the default:
// the spec's primary, documented interface is the external subprocess
// (External). Embedded exists for environments with no external SAT
// binary available (CI, this module's own tests) and is wired because
// go-air/gini is the one real embeddable SAT engine in the retrieved
// corpus (via the teacher's solver package and its vendored dimacs
// reader).
//
// Embedded does not implement a SAT solver itself — it hands the
// formula's own DIMACS serialization to gini.NewDimacs, the same
// library call the teacher's dict.go-era code used, and reads the
// result back out of gini's model. Variable numbering is preserved by
// gini's DIMACS reader, so variable ids line up with the Formula's
// own numbering without translation.
//
// Cancellation is checked only before the solve starts; once gini is
// solving, Solve runs to completion regardless of ctx.
type Embedded struct {
	logger *logrus.Entry
}

// NewEmbedded returns an Embedded oracle. A nil logger falls back to
// the standard logrus logger.
func NewEmbedded(logger *logrus.Entry) *Embedded {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Embedded{logger: logger}
}

func (o *Embedded) Solve(ctx context.Context, f *cnf.Formula, collectStats bool) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, &OracleError{Reason: "cancelled before oracle ran", Cause: err}
	}

	var buf bytes.Buffer
	if err := f.WriteDIMACS(&buf); err != nil {
		return nil, &OracleError{Reason: "serializing CNF for embedded solver", Cause: err}
	}

	g, err := gini.NewDimacs(&buf)
	if err != nil {
		return nil, &OracleError{Reason: "embedded solver rejected CNF", Cause: err}
	}

	o.logger.Debug("solving via embedded gini backend")
	outcome := g.Solve()

	switch outcome {
	case 1: // satisfiable
		assignment := make(Assignment, f.NumVars)
		for v := 1; v <= f.NumVars; v++ {
			assignment[v] = g.Value(z.Var(v).Pos())
		}
		var stats *Stats
		if collectStats {
			stats = &Stats{}
		}
		return &Result{Status: Satisfiable, Assignment: assignment, Stats: stats}, nil
	case -1: // unsatisfiable
		return &Result{Status: Unsatisfiable}, nil
	default:
		return nil, &OracleError{Reason: "embedded solver returned an undetermined outcome"}
	}
}
