// Package symtab implements the scoped symbol table (spec.md §4.B): three
// insertion-ordered, newest-first lists (functions, variables, history)
// over the symbols defined in package tree.
package symtab

import "github.com/wcomp/tcc/tree"

// Table holds the three symbol lists and the front-end's current
// nesting-level counter. The front-end owns NestingLevel: it increments
// it on scope entry and calls DeleteLevel on scope exit.
type Table struct {
	Functions *tree.Symbol
	Variables *tree.Symbol
	History   *tree.Symbol

	NestingLevel int
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{}
}

// Put prepends a new symbol of the given name and kind onto *list and
// returns it. The caller passes a pointer to whichever of Table's three
// list fields the new symbol belongs in (&t.Functions or &t.Variables;
// History is only ever populated by DeleteLevel). New symbols must be
// prepended, never appended: DeleteLevel's early exit depends on the
// list staying newest-first (spec.md SPEC_FULL.md §4 S4).
func Put(list **tree.Symbol, name string, kind tree.SymbolKind, sourceLine int) *tree.Symbol {
	s := &tree.Symbol{
		Name:       name,
		Kind:       kind,
		SourceLine: sourceLine,
	}
	s.ListNext = *list
	*list = s
	return s
}

// Get returns the first symbol named name in list, or nil.
func Get(list *tree.Symbol, name string) *tree.Symbol {
	for s := list; s != nil; s = s.ListNext {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// DeleteLevel walks *list, moving every AUTO or PARAMETER variable with
// nesting level >= level onto the front of t.History. Each is prepended
// as it's found, so the moved symbols land on History in the reverse of
// their order in *list, exactly as repeated copy_to_history prepends
// would produce. It stops at the first entry whose level is strictly
// less than level, since the list is
// newest-first and everything beyond that point was declared in an
// outer, still-active scope.
//
// Symbols are never freed here — a VAR node elsewhere in the tree may
// still reference one via Symbol (and an ASGN/VAR_DECL's symbol's
// EntryPoint may point back into it), so history symbols live until the
// whole table is discarded.
func (t *Table) DeleteLevel(list **tree.Symbol, level int) {
	var prev *tree.Symbol
	for s := *list; s != nil; {
		next := s.ListNext
		if s.Level < level {
			break
		}
		if s.Kind == tree.SymVar && (s.Qualifier == tree.Auto || s.Qualifier == tree.Parameter) {
			if prev == nil {
				*list = next
			} else {
				prev.ListNext = next
			}
			s.ListNext = t.History
			t.History = s
		} else {
			prev = s
		}
		s = next
	}
}

// FreeAll discards all three lists. Symbols are garbage-collected Go
// values; there is nothing to release explicitly beyond dropping the
// references, unlike the source's malloc'd SYMBOL structs.
func (t *Table) FreeAll() {
	t.Functions = nil
	t.Variables = nil
	t.History = nil
}
