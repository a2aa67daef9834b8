package sudosat

// Decide assigns one literal and follows every implication of it. It
// pushes a snapshot first, so a matching Undo is valid no matter how
// propagation ends. After Decide returns, HasConflict or IsEmpty may be
// true, or neither; the pending-unit set is drained unless a conflict
// cut propagation short.
func (f *Formula) Decide(lit int) {
	f.trail = append(f.trail, snapshot{active: f.active})
	f.stats.Decisions++
	if t := f.Tracer; t != nil {
		t.Decide(lit, f.Level())
	}
	if f.pending.add(lit) {
		f.fail()
		return
	}
	f.propagate()
}

// Undo reverts the most recent Decide exactly: the active-clause set and
// every variable assigned during that round return to their prior
// states, and the conflict flag and pending-unit set are cleared. At
// level 0 it does nothing.
func (f *Formula) Undo() {
	if len(f.trail) <= 1 {
		return
	}
	snap := f.trail[len(f.trail)-1]
	f.trail = f.trail[:len(f.trail)-1]
	for _, v := range snap.assigned {
		f.assignment[v] = Unassigned
	}
	f.active = snap.active
	f.conflict = false
	f.pending.clear()
	f.stats.Backtracks++
	if t := f.Tracer; t != nil {
		t.Backtrack(f.Level())
	}
}

// propagate consumes the pending-unit set smallest-literal-first. Each
// consumed literal is assigned and the active-clause set is rescanned
// once: satisfied clauses drop out, clauses left with a single
// unassigned literal feed the pending set, and a clause with every
// literal false stops propagation with a conflict. The active set is
// only replaced after a completed scan, so a conflict leaves the
// pre-scan set in place for Undo to restore.
func (f *Formula) propagate() {
	snap := &f.trail[len(f.trail)-1]
	for !f.pending.empty() {
		lit := f.pending.popMin()
		v := abs(lit)
		want := False
		if lit > 0 {
			want = True
		}
		if f.assignment[v] != Unassigned {
			if f.assignment[v] == want {
				continue
			}
			f.fail()
			return
		}
		f.assignment[v] = want
		snap.assigned = append(snap.assigned, v)
		f.stats.Implications++

		kept := make([]int, 0, len(f.active))
	clauseLoop:
		for _, id := range f.active {
			unassigned := 0
			unit := 0
			for _, l := range f.clauses[id] {
				switch f.eval(l) {
				case True:
					continue clauseLoop
				case Unassigned:
					unassigned++
					unit = l
				}
			}
			switch unassigned {
			case 0:
				f.fail()
				return
			case 1:
				if f.pending.add(unit) {
					f.fail()
					return
				}
			}
			kept = append(kept, id)
		}
		f.active = kept
	}
}

func (f *Formula) fail() {
	f.conflict = true
	if t := f.Tracer; t != nil {
		t.Conflict(f.Level())
	}
}
