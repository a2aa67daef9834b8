package sudosat

// Stats are counters describing a search. They are informational only.
type Stats struct {
	Decisions    int64
	Implications int64
	Backtracks   int64
}

// Solve runs the backtracking search to completion and reports whether
// the formula is satisfiable. On true, Assignment holds a satisfying
// assignment; variables it leaves unassigned are don't-cares. The error
// is non-nil only if the engine was driven into a state the search
// itself never produces.
func (f *Formula) Solve() (bool, error) {
	return f.dp()
}

// dp is one node of the decision tree: satisfied means SAT, conflicted
// means this branch is dead, otherwise branch on the best literal and
// try it in both polarities. Undo after each failed branch restores the
// state the decision was made in.
func (f *Formula) dp() (bool, error) {
	if f.IsEmpty() {
		return true, nil
	}
	if f.HasConflict() {
		return false, nil
	}
	lit, err := f.BranchLiteral()
	if err != nil {
		return false, err
	}
	f.Decide(lit)
	if sat, err := f.dp(); err != nil || sat {
		return sat, err
	}
	f.Undo()
	f.Decide(-lit)
	if sat, err := f.dp(); err != nil || sat {
		return sat, err
	}
	f.Undo()
	return false, nil
}

// Solve builds a formula from p and searches it. It returns the
// satisfying assignment (indexed by variable, index 0 unused) when one
// exists.
func Solve(p Problem) (assignment []Value, sat bool, err error) {
	f, err := NewFormula(p)
	if err != nil {
		return nil, false, err
	}
	sat, err = f.Solve()
	if err != nil || !sat {
		return nil, sat, err
	}
	return f.Assignment(), true, nil
}
