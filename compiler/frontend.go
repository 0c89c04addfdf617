package compiler

import "io"

// FrontEnd is the interface the CLI uses to obtain a parse tree. The
// lexer and parser themselves are out of scope for this module
// (spec.md §2 Non-goals lists them as an external collaborator,
// specified only at this interface): Parse must read src, populate
// c.Pool and c.Symbols via AddNode/symtab.Put as it goes, set c.Root
// once, and report a non-nil error for any syntax or semantic error it
// detects. The convention mirrors spec.md §6's "Parser → core"
// contract: nodes come from the pool, symbols from the table, nothing
// bypasses either.
type FrontEnd interface {
	Parse(src io.Reader, c *Compiler) error
}
