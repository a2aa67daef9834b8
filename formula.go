// Package sudosat implements a SAT solver for Sudoku-sized CNF formulas
// using the Davis-Putnam-Logemann-Loveland backtracking procedure with
// unit propagation and Jeroslow-Wang branching.
package sudosat

import (
	"sort"

	"github.com/pkg/errors"
)

// Errors reported by the engine. Conflicts found during propagation are
// not errors; they are ordinary search state reported by HasConflict.
var (
	// ErrMalformedInput is reported when CNF input fails to parse or
	// contradicts its own problem declaration. No formula is constructed.
	ErrMalformedInput = errors.New("malformed CNF input")

	// ErrNoUnassignedVariable is reported when a branch literal is
	// requested from a fully-assigned formula. The search driver never
	// asks in that state, so seeing this error means the caller drove
	// the engine by hand and skipped the IsEmpty check.
	ErrNoUnassignedVariable = errors.New("no unassigned variable")
)

// Value is the assignment state of a single variable.
type Value uint8

const (
	Unassigned Value = iota
	False
	True
)

func (v Value) String() string {
	switch v {
	case Unassigned:
		return "unassigned"
	case False:
		return "false"
	case True:
		return "true"
	default:
		panic("unreached")
	}
}

// Int returns the conventional integer form of a value: 1 for true, -1
// for false and 0 for unassigned.
func (v Value) Int() int {
	switch v {
	case True:
		return 1
	case False:
		return -1
	default:
		return 0
	}
}

// A Problem is a CNF formula in structured form. Each clause is a slice
// of nonzero literals; negative integers denote negated variables.
// Variables range over [1, NumVars].
type Problem struct {
	NumVars int
	Clauses [][]int
}

// A Formula is the solver's working state: an immutable clause database
// plus the current partial assignment, the set of clauses not yet
// satisfied by it, and the trail needed to back out decisions.
//
// A Formula is not safe for concurrent use.
type Formula struct {
	// Tracer, when non-nil, receives search events as they happen.
	Tracer Tracer

	numVars    int
	clauses    [][]int // clause id -> literals, fixed at construction
	assignment []Value // indexed by variable; index 0 unused
	active     []int   // ids of clauses not yet satisfied
	pending    pendingUnits
	trail      []snapshot // trail[0] is the base (level 0) snapshot
	conflict   bool
	stats      Stats
}

// A snapshot records what one decision changed: the active-clause set as
// it stood beforehand and the variables assigned while propagating it.
type snapshot struct {
	active   []int
	assigned []int
}

// NewFormula builds a formula from a structured problem. Unit clauses in
// the input are propagated immediately, at level 0, so contradictory
// inputs conflict before any decision is made. An empty input clause
// makes the formula conflicted outright.
//
// Duplicate literals within a clause are tolerated, as are complementary
// ones (such a clause is trivially satisfiable and loads as-is).
func NewFormula(p Problem) (*Formula, error) {
	if p.NumVars < 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "negative variable count %d", p.NumVars)
	}
	f := &Formula{
		numVars:    p.NumVars,
		clauses:    make([][]int, len(p.Clauses)),
		assignment: make([]Value, p.NumVars+1),
		active:     make([]int, 0, len(p.Clauses)),
	}
	for i, cls := range p.Clauses {
		for _, lit := range cls {
			if lit == 0 || lit < -p.NumVars || lit > p.NumVars {
				return nil, errors.Wrapf(ErrMalformedInput,
					"clause %d: literal %d outside [-%d, %d]", i, lit, p.NumVars, p.NumVars)
			}
		}
		f.clauses[i] = append([]int(nil), cls...)
		f.active = append(f.active, i)
		switch len(cls) {
		case 0:
			f.conflict = true
		case 1:
			if f.pending.add(cls[0]) {
				f.conflict = true
			}
		}
	}
	f.trail = []snapshot{{}}
	if !f.conflict {
		f.propagate()
	}
	return f, nil
}

// NumVars returns the declared variable count.
func (f *Formula) NumVars() int { return f.numVars }

// IsEmpty reports whether every clause is satisfied by the current
// partial assignment.
func (f *Formula) IsEmpty() bool { return len(f.active) == 0 }

// HasConflict reports whether the current partial assignment falsifies
// some clause.
func (f *Formula) HasConflict() bool { return f.conflict }

// Level returns the current decision depth. Level 0 is the state right
// after construction.
func (f *Formula) Level() int { return len(f.trail) - 1 }

// Stats returns counters describing the search so far.
func (f *Formula) Stats() Stats { return f.stats }

// eval returns the value of a literal under the current assignment.
func (f *Formula) eval(lit int) Value {
	v := f.assignment[abs(lit)]
	if v == Unassigned {
		return Unassigned
	}
	if (v == True) == (lit > 0) {
		return True
	}
	return False
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// pendingUnits is the set of literals forced by the current assignment
// but not yet propagated. Literals are kept sorted by signed value so
// that propagation consumes them smallest-first, which makes the search
// reproducible.
type pendingUnits struct {
	lits []int
}

// add inserts l unless already present. It reports whether the negation
// of l is pending, which is a conflict the caller must raise.
func (p *pendingUnits) add(l int) bool {
	if i := sort.SearchInts(p.lits, -l); i < len(p.lits) && p.lits[i] == -l {
		return true
	}
	i := sort.SearchInts(p.lits, l)
	if i < len(p.lits) && p.lits[i] == l {
		return false
	}
	p.lits = append(p.lits, 0)
	copy(p.lits[i+1:], p.lits[i:])
	p.lits[i] = l
	return false
}

func (p *pendingUnits) popMin() int {
	l := p.lits[0]
	p.lits = p.lits[1:]
	return l
}

func (p *pendingUnits) empty() bool { return len(p.lits) == 0 }

func (p *pendingUnits) clear() { p.lits = nil }
