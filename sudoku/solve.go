package sudoku

import (
	"github.com/sirupsen/logrus"

	"github.com/tfaber/sudosat"
)

// A Solver solves puzzles by reduction to SAT.
type Solver struct {
	// Log, when non-nil, receives progress and search events at debug
	// level.
	Log logrus.FieldLogger
}

// Solve returns the solved grid for g, or ok=false when the puzzle has
// no solution.
func (s Solver) Solve(g Grid) (solved Grid, ok bool, err error) {
	p, err := Encode(g)
	if err != nil {
		return Grid{}, false, err
	}
	if s.Log != nil {
		s.Log.WithFields(logrus.Fields{
			"givens":  g.Givens(),
			"clauses": len(p.Clauses),
		}).Debug("puzzle encoded")
	}
	f, err := sudosat.NewFormula(p)
	if err != nil {
		return Grid{}, false, err
	}
	if s.Log != nil {
		f.Tracer = sudosat.LogTracer{Log: s.Log}
	}
	sat, err := f.Solve()
	if err != nil {
		return Grid{}, false, err
	}
	if s.Log != nil {
		stats := f.Stats()
		s.Log.WithFields(logrus.Fields{
			"sat":          sat,
			"decisions":    stats.Decisions,
			"implications": stats.Implications,
			"backtracks":   stats.Backtracks,
		}).Debug("search finished")
	}
	if !sat {
		return Grid{}, false, nil
	}
	solved, err = Decode(f.Assignment())
	if err != nil {
		return Grid{}, false, err
	}
	return solved, true, nil
}

// Solve solves g with a default Solver.
func Solve(g Grid) (Grid, bool, error) {
	return Solver{}.Solve(g)
}
