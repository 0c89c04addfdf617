// Command tcc drives the middle-end over a source file: parse, run the
// optimizer to the requested level, compute storage layout, and print
// the parse tree, the optimized tree, and the symbol table.
//
// The lexer and parser are out of scope for this module (spec.md §2);
// this binary wires the real FrontEnd interface but, absent one, falls
// back to a small fixed demonstration program (see demo_frontend.go)
// so the pipeline and its CLI surface can be exercised end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/wcomp/tcc/compiler"
	"github.com/wcomp/tcc/tree"
)

// verboseCount implements flag.Value so repeated `-v` occurrences each
// bump the level by one, matching spec.md §6's "-v (verbose; repeated
// instances raise the verbosity level 1->2->3)".
type verboseCount int

func (v *verboseCount) String() string { return fmt.Sprintf("%d", *v) }
func (v *verboseCount) Set(string) error {
	*v++
	return nil
}
func (v *verboseCount) IsBoolFlag() bool { return true }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tcc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var verbosity verboseCount
	fs.Var(&verbosity, "v", "raise verbosity (repeatable: -v, -v -v, -v -v -v)")
	level := fs.Int("O", 2, "optimization level (0 disables the optimizer, 1 runs passes 1-3, 2+ also runs passes 4 and 5)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	positional := fs.Args()
	if len(positional) > 1 {
		fmt.Fprintf(stderr, "tcc: too many arguments: %v\n", positional)
		return 1
	}

	src := io.Reader(os.Stdin)
	if len(positional) == 1 {
		f, err := os.Open(positional[0])
		if err != nil {
			fmt.Fprintf(stderr, "tcc: %s\n", err)
			return 1
		}
		defer f.Close()
		src = f
	}

	c := compiler.New(
		compiler.WithVerbosity(tree.Verbosity(verbosity)),
		compiler.WithOutput(stdout),
	)
	defer c.Close()

	failed := false

	fe := FrontEnd()
	if err := fe.Parse(src, c); err != nil {
		fmt.Fprintf(stderr, "tcc: %s\n", err)
		failed = true
	}

	if !failed {
		if verbosity > 0 {
			fmt.Fprintf(stdout, "\n=== The parse tree (%d nodes) ===\n\n", c.Pool.LiveCount())
			c.PrintTree(stdout)
		}

		c.Optimize(*level)

		if *level > 0 {
			fmt.Fprintf(stdout, "\n=== After optimization ===\n\n")
			c.PrintTree(stdout)
		}

		c.Layout()

		if verbosity > 0 {
			fmt.Fprintf(stdout, "\n=== Symbol table ===\n\n")
			c.PrintSymbols(stdout)
		}
	}

	if failed {
		fmt.Fprintln(stdout, "Compilation: Failed")
		return 1
	}
	fmt.Fprintln(stdout, "Compilation: Passed")
	return 0
}
