package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Me8mer/Slitherinc/pkg/cnf"
)

// External shells out to a DIMACS-speaking SAT solver binary (Glucose
// by reference default) per spec §4.4/§6. It is the default Oracle
// backend.
//
// Grounded on containertools.ContainerCommandRunner: a logrus.Entry
// field, exec.Command(Context), and CombinedOutput-style error
// wrapping, repurposed from "shell out to a container CLI" to "shell
// out to a SAT solver".
type External struct {
	Command string
	Args    []string

	logger *logrus.Entry
}

// NewExternal returns an External oracle invoking command with args
// (the CNF file path is appended as the final argument). A nil logger
// falls back to the standard logrus logger.
func NewExternal(command string, args []string, logger *logrus.Entry) *External {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &External{Command: command, Args: args, logger: logger}
}

// Solve writes f to a temporary DIMACS file, invokes the configured
// solver on it, and parses its stdout per spec §4.4 step 4.
//
// The temporary file is removed on every exit path, including errors
// and cancellation, via a deferred os.Remove immediately after
// creation (scoped acquisition with guaranteed release, per spec §5).
func (o *External) Solve(ctx context.Context, f *cnf.Formula, collectStats bool) (*Result, error) {
	tmp, err := os.CreateTemp("", "slither-*.cnf")
	if err != nil {
		return nil, &OracleError{Reason: "creating CNF temp file", Cause: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := f.WriteDIMACS(tmp); err != nil {
		tmp.Close()
		return nil, &OracleError{Reason: "writing CNF to temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &OracleError{Reason: "closing CNF temp file", Cause: err}
	}

	args := make([]string, 0, len(o.Args)+1)
	args = append(args, o.Args...)
	args = append(args, tmpPath)

	cmd := exec.CommandContext(ctx, o.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	o.logger.Infof("running %s", cmd.String())
	start := time.Now()
	runErr := cmd.Run()
	o.logger.Debugf("oracle finished in %s", time.Since(start))

	if ctx.Err() != nil {
		return nil, &OracleError{Reason: "cancelled before oracle returned", Cause: ctx.Err()}
	}

	status, assignment, stats, sawOutcome := parseModel(stdout.String(), collectStats)
	if !sawOutcome {
		status, err = classifyByExitCode(runErr, stderr.String())
		if err != nil {
			return nil, err
		}
	}
	if status == Unknown {
		return nil, &OracleError{Reason: "solver reported an undetermined outcome"}
	}

	if status == Satisfiable && assignment == nil {
		assignment = Assignment{}
	}

	return &Result{Status: status, Assignment: assignment, Stats: stats}, nil
}

// classifyByExitCode falls back to the conventional DIMACS solver exit
// codes (10=SAT, 20=UNSAT, as used by Glucose and MiniSat-family
// solvers) when the solver's stdout carried no "s" line. An explicit
// outcome line always takes precedence over this fallback; see Solve.
func classifyByExitCode(runErr error, stderr string) (Status, error) {
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		switch exitErr.ExitCode() {
		case 10:
			return Satisfiable, nil
		case 20:
			return Unsatisfiable, nil
		default:
			return Unknown, &OracleError{
				Reason: fmt.Sprintf("solver exited %d with no outcome line: %s", exitErr.ExitCode(), stderr),
			}
		}
	}
	if runErr != nil {
		return Unknown, &OracleError{Reason: "failed to run solver", Cause: runErr}
	}
	return Unknown, &OracleError{Reason: "solver produced no outcome line"}
}
