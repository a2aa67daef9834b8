// Package sudoku encodes 9x9 Sudoku puzzles as CNF formulas and decodes
// satisfying assignments back into solved grids.
package sudoku

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrBadPuzzle is reported when puzzle text cannot be read as a 9x9
// grid.
var ErrBadPuzzle = errors.New("bad puzzle")

// A Grid is a 9x9 Sudoku board. Cell values are 1 through 9; zero marks
// an empty cell. Grids are plain values and copy on assignment.
type Grid [9][9]int

// ParseGrid reads a grid from text: 81 cells in row-major order, where
// digits 1-9 are givens and '0' or '.' an empty cell. Whitespace and
// the box-drawing characters '|', '-' and '+' are ignored, so both bare
// 81-character strings and rendered boards parse.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range s {
		var cell int
		switch {
		case r >= '1' && r <= '9':
			cell = int(r - '0')
		case r == '0' || r == '.':
			cell = 0
		case unicode.IsSpace(r) || r == '|' || r == '-' || r == '+':
			continue
		default:
			return Grid{}, errors.Wrapf(ErrBadPuzzle, "unexpected character %q", r)
		}
		if i == 81 {
			return Grid{}, errors.Wrap(ErrBadPuzzle, "more than 81 cells")
		}
		g[i/9][i%9] = cell
		i++
	}
	if i != 81 {
		return Grid{}, errors.Wrapf(ErrBadPuzzle, "got %d cells, want 81", i)
	}
	return g, nil
}

// Givens counts the filled-in cells.
func (g Grid) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid as a boxed text board. Empty cells print as
// dots.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			if g[r][c] == 0 {
				b.WriteString(". ")
			} else {
				b.WriteByte(byte('0' + g[r][c]))
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
