package sudoku

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const puzzle1 = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(puzzle1)
	if err != nil {
		t.Fatal(err)
	}
	if g[0][2] != 3 || g[0][4] != 2 || g[8][6] != 3 {
		t.Fatalf("parsed grid has wrong cells:\n%s", g)
	}
	if got := g.Givens(); got != 32 {
		t.Fatalf("Givens() = %d; want 32", got)
	}
}

func TestParseGridDots(t *testing.T) {
	dotted := strings.ReplaceAll(puzzle1, "0", ".")
	g, err := ParseGrid(dotted)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ParseGrid(puzzle1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g, want); diff != "" {
		t.Fatalf("dotted parse differs (-got, +want):\n%s", diff)
	}
}

func TestParseGridRendered(t *testing.T) {
	want, err := ParseGrid(puzzle1)
	if err != nil {
		t.Fatal(err)
	}
	// A rendered board must parse back to the same grid.
	got, err := ParseGrid(want.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("String/ParseGrid roundtrip differs (-got, +want):\n%s", diff)
	}
}

func TestParseGridErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"too short", puzzle1[:80]},
		{"too long", puzzle1 + "1"},
		{"stray character", "x" + puzzle1[1:]},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGrid(tt.text); !errors.Is(err, ErrBadPuzzle) {
				t.Fatalf("got %v; want ErrBadPuzzle", err)
			}
		})
	}
}
