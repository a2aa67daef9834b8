package sudosat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format.
//
// The problem line is required and authoritative: literals must lie in
// [-vars, vars] and exactly the declared number of clauses must appear.
// Anything after the final clause is ignored. A few common variations
// are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just
//     in the preamble.
//   - Clauses may span lines, and one line may hold several clauses;
//     every clause ends at its '0' terminator.
//   - A line containing a single % ends the input (some CNF files attach
//     trailer data after one).
func ParseDIMACS(r io.Reader) (Problem, error) {
	var p Problem
	var clause []int
	clauses := [][]int{}
	headerSeen := false
	declared := 0
	s := bufio.NewScanner(r)
scan:
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if headerSeen {
				return Problem{}, errors.Wrap(ErrMalformedInput, "multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Problem{}, errors.Wrapf(ErrMalformedInput, "bad problem line %q", line)
			}
			vars, err := strconv.Atoi(fields[2])
			if err != nil {
				return Problem{}, errors.Wrapf(ErrMalformedInput, "bad #vars in problem line: %s", err)
			}
			nclauses, err := strconv.Atoi(fields[3])
			if err != nil {
				return Problem{}, errors.Wrapf(ErrMalformedInput, "bad #clauses in problem line: %s", err)
			}
			if vars < 0 || nclauses < 0 {
				return Problem{}, errors.Wrapf(ErrMalformedInput, "negative counts in problem line %q", line)
			}
			p.NumVars = vars
			declared = nclauses
			headerSeen = true
			if declared == 0 {
				break
			}
			continue
		}
		if !headerSeen {
			return Problem{}, errors.Wrapf(ErrMalformedInput, "clause before problem line: %q", line)
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return Problem{}, errors.Wrapf(ErrMalformedInput, "bad token %q", field)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
				if len(clauses) == declared {
					break scan
				}
				continue
			}
			if n < -p.NumVars || n > p.NumVars {
				return Problem{}, errors.Wrapf(ErrMalformedInput,
					"literal %d outside [-%d, %d]", n, p.NumVars, p.NumVars)
			}
			clause = append(clause, n)
		}
	}
	if err := s.Err(); err != nil {
		return Problem{}, errors.Wrap(err, "read CNF input")
	}
	if !headerSeen {
		return Problem{}, errors.Wrap(ErrMalformedInput, "missing problem line")
	}
	if len(clause) > 0 {
		return Problem{}, errors.Wrap(ErrMalformedInput, "unterminated clause at end of input")
	}
	if len(clauses) != declared {
		return Problem{}, errors.Wrapf(ErrMalformedInput,
			"problem line declares %d clauses, found %d", declared, len(clauses))
	}
	p.Clauses = clauses
	return p, nil
}

// WriteDIMACS writes p in the DIMACS CNF format, one clause per line.
func WriteDIMACS(w io.Writer, p Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", p.NumVars, len(p.Clauses))
	for _, cls := range p.Clauses {
		for _, lit := range cls {
			fmt.Fprintf(bw, "%d ", lit)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}

// Load parses DIMACS text from r and builds a formula from it.
func Load(r io.Reader) (*Formula, error) {
	p, err := ParseDIMACS(r)
	if err != nil {
		return nil, err
	}
	return NewFormula(p)
}
