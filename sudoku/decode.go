package sudoku

import (
	"github.com/pkg/errors"

	"github.com/tfaber/sudosat"
)

// Decode extracts a solved grid from a satisfying assignment. The
// encoding guarantees exactly one true digit variable per cell;
// anything else means the assignment did not come from Encode's
// formula.
func Decode(assignment []sudosat.Value) (Grid, error) {
	if len(assignment) <= NumVars {
		return Grid{}, errors.Errorf("assignment covers %d variables, want %d", len(assignment)-1, NumVars)
	}
	var g Grid
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			found := 0
			for d := 1; d <= 9; d++ {
				if assignment[mustVar(r, c, d)] != sudosat.True {
					continue
				}
				g[r-1][c-1] = d
				found++
			}
			if found != 1 {
				return Grid{}, errors.Errorf("cell (%d, %d) has %d true digits", r, c, found)
			}
		}
	}
	return g, nil
}
