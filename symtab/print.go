package symtab

import (
	"fmt"
	"io"

	"github.com/wcomp/tcc/tree"
)

// Fprint writes one line per symbol in list, in list order, matching
// print_all_symbols: name, then VAR's nesting level/qualifier/address
// or FNC's parameter count/names/auto count.
func Fprint(w io.Writer, list *tree.Symbol) {
	for s := list; s != nil; s = s.ListNext {
		fmt.Fprintf(w, "Name: %s", s.Name)
		switch s.Kind {
		case tree.SymVar:
			fmt.Fprintf(w, ", Nlevel: %d", s.Level)
			fmt.Fprintf(w, ", Qualifier: %s", s.Qualifier)
			switch s.Qualifier {
			case tree.Global, tree.Parameter:
				fmt.Fprintf(w, ", +%d", s.RelAddress)
			case tree.Auto:
				fmt.Fprintf(w, ", -%d", s.RelAddress)
			}
		case tree.SymFnc:
			fmt.Fprintf(w, ", Nparam: %d, ", s.NumParam)
			for p := s.Params; p != nil; p = p.Next {
				fmt.Fprintf(w, "%s ", p.Symbol.Name)
			}
			fmt.Fprintf(w, ", Nauto: %d", s.NumAuto)
		}
		fmt.Fprintln(w)
	}
}
