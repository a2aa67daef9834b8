package sudoku

import (
	"github.com/pkg/errors"

	"github.com/tfaber/sudosat"
)

// NumVars is the variable space of the encoding: every variable is a
// three-digit integer RCD, so 999 bounds them all.
const NumVars = 999

// VarOf maps (row, col, digit), each in [1, 9], to the propositional
// variable 100*row + 10*col + digit, which is true iff the cell at
// (row, col) holds digit.
func VarOf(row, col, digit int) (int, error) {
	if row < 1 || row > 9 || col < 1 || col > 9 || digit < 1 || digit > 9 {
		return 0, errors.Errorf("cell (%d, %d) digit %d out of range", row, col, digit)
	}
	return 100*row + 10*col + digit, nil
}

// CellOf is the inverse of VarOf.
func CellOf(v int) (row, col, digit int, err error) {
	row, col, digit = v/100, v/10%10, v%10
	if row < 1 || row > 9 || col < 1 || col > 9 || digit < 1 || digit > 9 {
		return 0, 0, 0, errors.Errorf("variable %d does not name a cell", v)
	}
	return row, col, digit, nil
}

// mustVar is VarOf for loop indices already known to be in range.
func mustVar(row, col, digit int) int {
	v, err := VarOf(row, col, digit)
	if err != nil {
		panic(err)
	}
	return v
}

// A group is a row, column or box: nine cells that must hold nine
// distinct digits.
type group [9][2]int

// groups lists the 27 cell groups in a fixed order: rows, then columns,
// then boxes.
func groups() []group {
	var gs []group
	for r := 1; r <= 9; r++ {
		var g group
		for c := 1; c <= 9; c++ {
			g[c-1] = [2]int{r, c}
		}
		gs = append(gs, g)
	}
	for c := 1; c <= 9; c++ {
		var g group
		for r := 1; r <= 9; r++ {
			g[r-1] = [2]int{r, c}
		}
		gs = append(gs, g)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var g group
			for i := 0; i < 9; i++ {
				g[i] = [2]int{3*br + i/3 + 1, 3*bc + i%3 + 1}
			}
			gs = append(gs, g)
		}
	}
	return gs
}

// Encode reduces a puzzle to CNF. The structural clauses say that every
// cell holds exactly one digit and that every row, column and box holds
// each digit exactly once; one unit clause per given pins the clues.
// Exactly-once is encoded as one at-least-one clause plus all 36
// pairwise at-most-one clauses, so an empty grid always yields the same
// 11988 structural clauses in the same order.
func Encode(g Grid) (sudosat.Problem, error) {
	var clauses [][]int

	// Each cell holds at least one digit, and no two at once.
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			alo := make([]int, 9)
			for d := 1; d <= 9; d++ {
				alo[d-1] = mustVar(r, c, d)
			}
			clauses = append(clauses, alo)
			for d := 1; d <= 9; d++ {
				for e := d + 1; e <= 9; e++ {
					clauses = append(clauses, []int{-mustVar(r, c, d), -mustVar(r, c, e)})
				}
			}
		}
	}

	// Each row, column and box holds each digit exactly once.
	for _, cells := range groups() {
		for d := 1; d <= 9; d++ {
			alo := make([]int, 9)
			for i, rc := range cells {
				alo[i] = mustVar(rc[0], rc[1], d)
			}
			clauses = append(clauses, alo)
			for i := 0; i < 9; i++ {
				for j := i + 1; j < 9; j++ {
					clauses = append(clauses, []int{
						-mustVar(cells[i][0], cells[i][1], d),
						-mustVar(cells[j][0], cells[j][1], d),
					})
				}
			}
		}
	}

	// The givens.
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			d := g[r-1][c-1]
			if d == 0 {
				continue
			}
			v, err := VarOf(r, c, d)
			if err != nil {
				return sudosat.Problem{}, errors.Wrapf(ErrBadPuzzle, "cell (%d, %d) holds %d", r, c, d)
			}
			clauses = append(clauses, []int{v})
		}
	}

	return sudosat.Problem{NumVars: NumVars, Clauses: clauses}, nil
}
