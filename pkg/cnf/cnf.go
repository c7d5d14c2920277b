// Package cnf represents a conjunctive normal form formula and its
// DIMACS text encoding, grounded on the wire format used by
// github.com/go-air/gini/dimacs.
package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Clause is a non-empty sequence of non-zero signed literals. A
// positive literal v means "variable v is true"; -v means "v is
// false".
type Clause []int

// Formula is an ordered, append-only sequence of clauses over a fixed
// number of variables. Clauses are appended only, never removed or
// reordered, so the CNF grows monotonically across CEGAR iterations.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// New returns an empty Formula over numVars variables.
func New(numVars int) *Formula {
	return &Formula{NumVars: numVars}
}

// Add appends a clause built from the given literals. It panics if
// any literal is 0 or exceeds the formula's variable count in
// absolute value, since either would indicate an encoder bug rather
// than recoverable input.
func (f *Formula) Add(lits ...int) {
	clause := make(Clause, len(lits))
	for i, lit := range lits {
		if lit == 0 {
			panic("cnf: literal 0 is not a valid literal")
		}
		v := lit
		if v < 0 {
			v = -v
		}
		if v > f.NumVars {
			panic(fmt.Sprintf("cnf: literal %d out of range for %d variables", lit, f.NumVars))
		}
		clause[i] = lit
	}
	f.Clauses = append(f.Clauses, clause)
}

// Len returns the number of clauses currently in the formula.
func (f *Formula) Len() int {
	return len(f.Clauses)
}

// WriteDIMACS serializes the formula in standard DIMACS CNF form: a
// header line "p cnf <numVars> <numClauses>", then one clause per
// line as space-separated signed integers terminated by 0.
func (f *Formula) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseDIMACS reads a DIMACS CNF formula back from text in the format
// produced by WriteDIMACS. Comment lines beginning with "c" are
// skipped. It exists so the round-trip property in the spec ("writing
// the CNF and reparsing yields the identical clause set") is something
// tests actually exercise. The embedded oracle backend does not use it;
// it hands the DIMACS text straight to gini.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var f *Formula
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("cnf: malformed problem line %q", line)
			}
			numVars, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("cnf: malformed variable count %q: %w", fields[2], err)
			}
			f = New(numVars)
			continue
		}
		if f == nil {
			return nil, fmt.Errorf("cnf: clause line before problem line: %q", line)
		}
		fields := strings.Fields(line)
		var clause Clause
		for _, tok := range fields {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("cnf: malformed literal %q: %w", tok, err)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, lit)
		}
		f.Clauses = append(f.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("cnf: missing problem line")
	}
	return f, nil
}
