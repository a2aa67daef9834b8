// Command sudosat solves Sudoku puzzles by reduction to boolean
// satisfiability, and doubles as a small DIMACS CNF solver.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tfaber/sudosat"
	"github.com/tfaber/sudosat/sudoku"
)

func main() {
	root := &cobra.Command{
		Use:   "sudosat",
		Short: "Solve Sudoku puzzles by reduction to SAT",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.AddCommand(newSolveCmd(), newSatCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads the named file, or standard input when no argument
// was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle read from a file or standard input",
		Long: `Solve reads a Sudoku puzzle and prints the solved board.

The puzzle is 81 cells in row-major order; digits are givens and '.' or
'0' an empty cell. Whitespace and box-drawing characters are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			g, err := sudoku.ParseGrid(string(text))
			if err != nil {
				return err
			}
			solver := sudoku.Solver{}
			if log.IsLevelEnabled(log.DebugLevel) {
				solver.Log = log.StandardLogger()
			}
			solved, ok, err := solver.Solve(g)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("puzzle has no solution")
			}
			fmt.Print(solved)
			return nil
		},
	}
}

func newSatCmd() *cobra.Command {
	var showAssign bool
	cmd := &cobra.Command{
		Use:   "sat [input.cnf]",
		Short: "Decide a DIMACS CNF formula",
		Long: `Sat reads a problem in the DIMACS CNF format and prints either UNSAT,
or SAT followed by a satisfying assignment as one line of signed
literals, without a terminating 0. Variables left unassigned are
omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			f, err := sudosat.Load(strings.NewReader(string(text)))
			if err != nil {
				return err
			}
			if log.IsLevelEnabled(log.DebugLevel) {
				f.Tracer = sudosat.LogTracer{Log: log.StandardLogger()}
			}
			sat, err := f.Solve()
			if err != nil {
				return err
			}
			stats := f.Stats()
			log.WithFields(log.Fields{
				"decisions":    stats.Decisions,
				"implications": stats.Implications,
				"backtracks":   stats.Backtracks,
			}).Debug("search finished")
			if !sat {
				fmt.Println("UNSAT")
				os.Exit(1)
			}
			fmt.Println("SAT")
			assignment := f.Assignment()
			if showAssign {
				return sudosat.WriteAssignment(os.Stdout, assignment)
			}
			for i, lit := range sudosat.Literals(assignment) {
				if i > 0 {
					fmt.Print(" ")
				}
				fmt.Print(lit)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().BoolVar(&showAssign, "assign", false, "print one Variable/Value line per variable")
	return cmd
}
