package sudosat

import (
	"bufio"
	"fmt"
	"io"
)

// Assignment returns a copy of the assignment vector, indexed by
// variable. Index 0 is unused. In a satisfying assignment, Unassigned
// entries are don't-cares.
func (f *Formula) Assignment() []Value {
	return append([]Value(nil), f.assignment...)
}

// Literals returns the assignment as signed literals, ascending by
// variable: v for a true variable, -v for a false one. Unassigned
// variables are omitted.
func Literals(assignment []Value) []int {
	var lits []int
	for v := 1; v < len(assignment); v++ {
		switch assignment[v] {
		case True:
			lits = append(lits, v)
		case False:
			lits = append(lits, -v)
		}
	}
	return lits
}

// WriteAssignment writes one "Variable <v> Value <x>" line per variable
// in ascending order, with x being 1, -1 or 0 for true, false and
// unassigned respectively.
func WriteAssignment(w io.Writer, assignment []Value) error {
	bw := bufio.NewWriter(w)
	for v := 1; v < len(assignment); v++ {
		fmt.Fprintf(bw, "Variable %d Value %d\n", v, assignment[v].Int())
	}
	return bw.Flush()
}
