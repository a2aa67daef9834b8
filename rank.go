package sudosat

import "math"

// jwScale[k] is 2^-k. Sudoku clauses are short, so the table covers the
// hot path; longer clauses fall back to math.Pow.
var jwScale = [11]float64{
	1, 0.5, 0.25, 0.125, 0.0625, 0.03125, 0.015625,
	0.0078125, 0.00390625, 0.001953125, 0.0009765625,
}

func jwWeight(k int) float64 {
	if k < len(jwScale) {
		return jwScale[k]
	}
	return math.Pow(2, -float64(k))
}

// rankTable holds one Jeroslow-Wang score per literal polarity. It is
// rebuilt from scratch for every branching decision.
type rankTable struct {
	pos, neg []float64
}

// rank scores every unassigned literal over the active clauses: each
// clause with k unassigned literals contributes 2^-k to each of them.
func (f *Formula) rank() rankTable {
	rt := rankTable{
		pos: make([]float64, f.numVars+1),
		neg: make([]float64, f.numVars+1),
	}
	for _, id := range f.active {
		cls := f.clauses[id]
		k := 0
		for _, l := range cls {
			if f.eval(l) == Unassigned {
				k++
			}
		}
		if k == 0 {
			continue
		}
		w := jwWeight(k)
		for _, l := range cls {
			if f.eval(l) != Unassigned {
				continue
			}
			if l > 0 {
				rt.pos[l] += w
			} else {
				rt.neg[-l] += w
			}
		}
	}
	return rt
}

// BranchLiteral returns the literal to try next: the unassigned variable
// with the greatest combined Jeroslow-Wang score, in its higher-scoring
// polarity. All scores are accumulated before any maximum is taken. Ties
// go to the smallest variable index, then to the positive literal.
func (f *Formula) BranchLiteral() (int, error) {
	rt := f.rank()
	best, bestScore := 0, math.Inf(-1)
	for v := 1; v <= f.numVars; v++ {
		if f.assignment[v] != Unassigned {
			continue
		}
		if s := rt.pos[v] + rt.neg[v]; s > bestScore {
			best, bestScore = v, s
		}
	}
	if best == 0 {
		return 0, ErrNoUnassignedVariable
	}
	if rt.neg[best] > rt.pos[best] {
		return -best, nil
	}
	return best, nil
}
