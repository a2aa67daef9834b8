package sudoku

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarBijection(t *testing.T) {
	v, err := VarOf(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 111, v)
	v, err = VarOf(9, 9, 9)
	require.NoError(t, err)
	require.Equal(t, 999, v)

	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			for d := 1; d <= 9; d++ {
				v, err := VarOf(r, c, d)
				require.NoError(t, err)
				rr, cc, dd, err := CellOf(v)
				require.NoError(t, err)
				require.Equal(t, [3]int{r, c, d}, [3]int{rr, cc, dd})
			}
		}
	}
}

func TestVarBounds(t *testing.T) {
	for _, cell := range [][3]int{
		{0, 1, 1}, {10, 1, 1}, {1, 0, 1}, {1, 10, 1}, {1, 1, 0}, {1, 1, 10},
	} {
		_, err := VarOf(cell[0], cell[1], cell[2])
		require.Error(t, err, "VarOf(%v)", cell)
	}
	for _, v := range []int{0, 1, 100, 110, 101, 1000, -111} {
		_, _, _, err := CellOf(v)
		require.Error(t, err, "CellOf(%d)", v)
	}
}

func TestEncodeClauseCounts(t *testing.T) {
	p, err := Encode(Grid{})
	require.NoError(t, err)
	require.Equal(t, NumVars, p.NumVars)
	// 81 cells contribute one at-least-one clause and 36 pairwise
	// at-most-one clauses each; the 27 groups contribute the same per
	// digit.
	require.Len(t, p.Clauses, 81+81*36+27*9*(1+36))

	byLen := map[int]int{}
	for _, cls := range p.Clauses {
		byLen[len(cls)]++
	}
	require.Equal(t, map[int]int{
		9: 81 + 27*9,
		2: 81*36 + 27*9*36,
	}, byLen)
}

func TestEncodeGivens(t *testing.T) {
	g, err := ParseGrid(puzzle1)
	require.NoError(t, err)
	p, err := Encode(g)
	require.NoError(t, err)
	require.Len(t, p.Clauses, 11988+g.Givens())

	units := map[int]bool{}
	for _, cls := range p.Clauses {
		if len(cls) == 1 {
			units[cls[0]] = true
		}
	}
	require.Len(t, units, g.Givens())
	// Spot-check a few: row 1 col 3 holds 3, row 2 col 1 holds 9.
	require.True(t, units[133])
	require.True(t, units[219])
}

func TestEncodePairsExact(t *testing.T) {
	p, err := Encode(Grid{})
	require.NoError(t, err)
	// Every binary clause must appear exactly once per constraint
	// source. Cell pairs occur once; a digit pair of two cells sharing
	// a row, column or box occurs once per shared group.
	seen := map[[2]int]int{}
	for _, cls := range p.Clauses {
		if len(cls) != 2 {
			continue
		}
		a, b := -cls[0], -cls[1]
		if a > b {
			a, b = b, a
		}
		seen[[2]int{a, b}]++
	}
	for pair, n := range seen {
		a, b := pair[0], pair[1]
		ra, ca, da, err := CellOf(a)
		require.NoError(t, err)
		rb, cb, db, err := CellOf(b)
		require.NoError(t, err)
		want := 0
		if ra == rb && ca == cb {
			want++ // same cell, two digits
		}
		if da == db {
			if ra == rb {
				want++
			}
			if ca == cb {
				want++
			}
			if (ra-1)/3 == (rb-1)/3 && (ca-1)/3 == (cb-1)/3 {
				want++
			}
		}
		require.Equal(t, want, n, "pair %v", pair)
	}
	// And nothing is missing: the occurrences summed over all pairs
	// must equal the number of binary clauses the encoding emits.
	total := 0
	for _, n := range seen {
		total += n
	}
	require.Equal(t, 81*36+27*9*36, total)
}
