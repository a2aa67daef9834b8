package sudoku

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tfaber/sudosat"
)

const solution1 = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"

func TestSolveKnownPuzzle(t *testing.T) {
	g, err := ParseGrid(puzzle1)
	require.NoError(t, err)
	want, err := ParseGrid(solution1)
	require.NoError(t, err)

	solved, ok, err := Solve(g)
	require.NoError(t, err)
	require.True(t, ok, "puzzle should be solvable")
	require.Equal(t, want, solved)
}

func TestSolveOverconstrained(t *testing.T) {
	// Two equal givens in one row cannot be satisfied.
	var g Grid
	g[0][0] = 5
	g[0][5] = 5
	_, ok, err := Solve(g)
	require.NoError(t, err)
	require.False(t, ok, "puzzle with a duplicated row given must be unsolvable")
}

func TestSolvePreservesGivens(t *testing.T) {
	g, err := ParseGrid(puzzle1)
	require.NoError(t, err)
	solved, ok, err := Solve(g)
	require.NoError(t, err)
	require.True(t, ok)
	requireValidSolution(t, g, solved)
}

// requireValidSolution checks that solved is a complete legal grid
// extending the givens of puzzle.
func requireValidSolution(t *testing.T, puzzle, solved Grid) {
	t.Helper()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.True(t, solved[r][c] >= 1 && solved[r][c] <= 9,
				"cell (%d, %d) = %d", r+1, c+1, solved[r][c])
			if puzzle[r][c] != 0 {
				require.Equal(t, puzzle[r][c], solved[r][c],
					"given at (%d, %d) changed", r+1, c+1)
			}
		}
	}
	check := func(name string, cells [9][2]int) {
		seen := [10]bool{}
		for _, rc := range cells {
			d := solved[rc[0]][rc[1]]
			require.False(t, seen[d], "%s repeats %d", name, d)
			seen[d] = true
		}
	}
	for r := 0; r < 9; r++ {
		var cells [9][2]int
		for c := 0; c < 9; c++ {
			cells[c] = [2]int{r, c}
		}
		check("row", cells)
	}
	for c := 0; c < 9; c++ {
		var cells [9][2]int
		for r := 0; r < 9; r++ {
			cells[r] = [2]int{r, c}
		}
		check("column", cells)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var cells [9][2]int
			for i := 0; i < 9; i++ {
				cells[i] = [2]int{3*br + i/3, 3*bc + i%3}
			}
			check("box", cells)
		}
	}
}

func TestDecodeRejectsIncompleteAssignment(t *testing.T) {
	_, err := Decode(make([]sudosat.Value, 0))
	require.Error(t, err)
}
