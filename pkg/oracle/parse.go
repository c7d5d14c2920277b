package oracle

import (
	"strconv"
	"strings"
)

// parseModel reads DIMACS solver output: an "s SATISFIABLE" or
// "s UNSATISFIABLE" line, zero or more "v ..." lines (concatenated,
// each terminated by a literal 0) carrying the model when satisfiable,
// and "c ..." comment lines optionally carrying statistics.
//
// Absence of any "s" line is treated by the caller as falling back to
// the solver's process exit code (see External.Solve); parseModel
// itself only reports what it actually saw.
func parseModel(output string, collectStats bool) (status Status, assignment Assignment, stats *Stats, sawOutcome bool) {
	status = Unknown
	if collectStats {
		stats = &Stats{}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		switch line[0] {
		case 's':
			sawOutcome = true
			switch strings.TrimSpace(strings.TrimPrefix(line, "s")) {
			case "SATISFIABLE":
				status = Satisfiable
			case "UNSATISFIABLE":
				status = Unsatisfiable
			default:
				status = Unknown
			}
		case 'v':
			if assignment == nil {
				assignment = make(Assignment)
			}
			for _, tok := range strings.Fields(strings.TrimPrefix(line, "v")) {
				n, err := strconv.Atoi(tok)
				if err != nil || n == 0 {
					continue
				}
				varID := n
				if varID < 0 {
					varID = -varID
				}
				assignment[varID] = n > 0
			}
		case 'c':
			if collectStats {
				comment := strings.TrimSpace(strings.TrimPrefix(line, "c"))
				stats.Comments = append(stats.Comments, comment)
				if secs, ok := parseCPUTime(comment); ok {
					stats.CPUTimeSeconds += secs
				}
			}
		}
	}

	return status, assignment, stats, sawOutcome
}

// parseCPUTime extracts the numeric value from a comment of the form
// "CPU time: 0.0123" or "CPU time  : 0.0123 s", as emitted by Glucose
// and similar DIMACS solvers.
func parseCPUTime(comment string) (float64, bool) {
	idx := strings.Index(strings.ToLower(comment), "cpu time")
	if idx < 0 {
		return 0, false
	}
	rest := comment[idx+len("cpu time"):]
	rest = strings.TrimLeft(rest, " :\t")
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
