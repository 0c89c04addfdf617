// Package compiler wires the middle-end components — tree, symtab,
// optimize, and layout — into the single pipeline a front-end drives:
// populate a Compiler's Pool/Symbols/Root, call Optimize, then Layout,
// then hand Root and Symbols to a back-end. Modeled on the teacher's
// Environment type: one struct bundling the subsystems a run needs,
// built through functional options.
package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/wcomp/tcc/layout"
	"github.com/wcomp/tcc/optimize"
	"github.com/wcomp/tcc/symtab"
	"github.com/wcomp/tcc/tree"
)

// Compiler owns the node pool and symbol table for one compilation and
// drives the optimize and layout stages over them. It is not safe for
// concurrent use, matching tree.Pool's single-compilation contract.
type Compiler struct {
	Pool    *tree.Pool
	Symbols *symtab.Table

	// Root is the front-end's parse tree: a right-chained list of
	// top-level FNCDECL and VARDECL statements. The front-end sets this
	// (and populates Symbols) before any other Compiler method is called.
	Root *tree.Node

	verbosity tree.Verbosity
	out       io.Writer
}

// Option configures a Compiler at construction time.
type Option func(*Compiler)

// WithVerbosity sets the diagnostic level passed through to the
// optimizer's pass banners and tree dumps.
func WithVerbosity(v tree.Verbosity) Option {
	return func(c *Compiler) { c.verbosity = v }
}

// WithOutput redirects diagnostic and tree-dump output; the default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Compiler) { c.out = w }
}

// New returns a Compiler with a fresh pool and symbol table, ready for
// a front-end to populate.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		Pool:    tree.NewPool(),
		Symbols: symtab.New(),
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Optimize runs the five optimizer passes over c.Root at the given
// level (spec.md §4.E): 0 disables optimization, 1 runs the
// sort/fold/propagate fixed point only, 2 or more also runs the dead-
// variable and constant-condition passes once.
func (c *Compiler) Optimize(level int) {
	optimize.Run(c.Pool, c.Root, optimize.Options{
		Level:     level,
		Verbosity: c.verbosity,
		Out:       c.out,
	})
}

// Layout assigns relative storage addresses to every parameter,
// automatic variable, and global variable in the symbol table
// (spec.md §4.F). Call this after Optimize, so that automatic
// variables optimize's pass 4 removed are not counted.
func (c *Compiler) Layout() {
	layout.ComputeStackAndData(c.Symbols.Functions, c.Symbols.Variables)
}

// PrintTree writes the current parse tree in the source's node-dump
// format (spec.md §4.D).
func (c *Compiler) PrintTree(w io.Writer) {
	tree.Fprint(w, c.Root)
}

// PrintSymbols writes the symbol table in the source's dump format:
// functions, then present globals/automatics, then the history list
// (symbols DeleteLevel moved out of scope — v5/symbol.c's
// "Variables (past)" section).
func (c *Compiler) PrintSymbols(w io.Writer) {
	fmt.Fprintln(w, "--- Functions ---")
	symtab.Fprint(w, c.Symbols.Functions)
	fmt.Fprintln(w, "--- Global variables ---")
	symtab.Fprint(w, c.Symbols.Variables)
	fmt.Fprintln(w, "--- Variables (past) ---")
	symtab.Fprint(w, c.Symbols.History)
}

// Close releases every node the pool holds. Call it once compilation
// output has been consumed; a Compiler must not be used afterward.
func (c *Compiler) Close() {
	c.Pool.FreeAll()
}
