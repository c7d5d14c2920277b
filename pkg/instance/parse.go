// Package instance parses the Slitherlink instance file format
// described in spec §6: a header line "H W", then H lines of W
// whitespace-separated tokens, each a clue digit in {0,1,2,3} or "."
// for no clue.
package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed instance file. It belongs to the
// configuration-error category of spec §7 (fatal, reported to the
// user, never recovered from locally) but is its own type, distinct
// from grid.ConfigError.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("instance file line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("instance file: %s", e.Reason)
}

// Parse reads a Slitherlink instance from r, returning a
// row-major H×W grid of clue pointers (nil for an unclued cell) ready
// for pkg/grid.Build.
func Parse(r io.Reader) ([][]*int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, &ParseError{Line: 1, Reason: "missing dimensions line"}
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, &ParseError{Line: 1, Reason: fmt.Sprintf("want two integers H W, got %q", scanner.Text())}
	}
	height, err := strconv.Atoi(header[0])
	if err != nil || height <= 0 {
		return nil, &ParseError{Line: 1, Reason: fmt.Sprintf("invalid height %q", header[0])}
	}
	width, err := strconv.Atoi(header[1])
	if err != nil || width <= 0 {
		return nil, &ParseError{Line: 1, Reason: fmt.Sprintf("invalid width %q", header[1])}
	}

	grid := make([][]*int, height)
	for row := 0; row < height; row++ {
		lineNum := row + 2
		if !scanner.Scan() {
			return nil, &ParseError{Line: lineNum, Reason: "missing row"}
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != width {
			return nil, &ParseError{Line: lineNum, Reason: fmt.Sprintf("want %d tokens, got %d", width, len(tokens))}
		}
		cells := make([]*int, width)
		for col, tok := range tokens {
			cells[col], err = parseToken(tok)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Reason: err.Error()}
			}
		}
		grid[row] = cells
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	return grid, nil
}

func parseToken(tok string) (*int, error) {
	if tok == "." {
		return nil, nil
	}
	if len(tok) != 1 || tok[0] < '0' || tok[0] > '3' {
		return nil, fmt.Errorf("invalid token %q, want a digit in [0,3] or \".\"", tok)
	}
	v := int(tok[0] - '0')
	return &v, nil
}
