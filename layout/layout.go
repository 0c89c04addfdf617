// Package layout computes relative storage addresses for every symbol
// the front-end declared: function parameters, per-function automatic
// variables, and global variables. It runs after the optimizer, once
// dead automatic variables have already been pruned by optimize's pass
// 4 — so the automatic-variable count it produces reflects only the
// variables actually referenced in the final tree.
//
// Grounded on v5/symbol.c's compute_stack_and_data, compute_auto_offsets,
// count_offsets, find_variable, add_variable and free_varlist.
package layout

import "github.com/wcomp/tcc/tree"

// ComputeStackAndData assigns RelAddress to every parameter, automatic
// variable, and global variable reachable from fns and vars:
//
//   - parameters are numbered from NumParam down to 1, in their Params
//     list order;
//   - automatic variables are discovered by walking each function's
//     body and numbered from 1 up, in the reverse of discovery order
//     (the source builds its scratch list by prepending, then assigns
//     offsets in list order — reproduced here rather than "fixed", in
//     the same spirit as spec.md §9's other documented quirks);
//   - global variables are numbered from 1 up, in vars' list order;
//     entries of vars with another qualifier keep the address the
//     parameter and automatic-variable numbering gave them.
//
// fns must contain only SymFnc symbols and vars only SymVar symbols,
// which is how package symtab partitions its two lists.
func ComputeStackAndData(fns *tree.Symbol, vars *tree.Symbol) {
	for s := fns; s != nil; s = s.ListNext {
		nparam := s.NumParam
		for p := s.Params; p != nil; p = p.Next {
			p.Symbol.RelAddress = nparam
			nparam--
		}
		computeAutoOffsets(s)
	}

	rel := 1
	for s := vars; s != nil; s = s.ListNext {
		if s.Qualifier != tree.Global {
			continue
		}
		s.RelAddress = rel
		rel++
	}
}

// varScratch is the discovery list built while walking one function's
// body, mirroring the source's file-scope varlist_t chain.
type varScratch struct {
	symbol *tree.Symbol
	next   *varScratch
}

func findVariable(head *varScratch, s *tree.Symbol) bool {
	for p := head; p != nil; p = p.next {
		if p.symbol == s {
			return true
		}
	}
	return false
}

func computeAutoOffsets(fn *tree.Symbol) {
	var head *varScratch

	table := locateVarsTable(&head)
	tree.Traverse(fn.Body, table)

	offset := int64(0)
	for p := head; p != nil; p = p.next {
		p.symbol.RelAddress = int(1 + offset)
		offset++
	}
	fn.NumAuto = int(offset)
}

func locateVarsTable(head **varScratch) tree.Table {
	var table tree.Table
	table[tree.VAR] = func(node *tree.Node) { registerVar(node, head) }
	return table
}

func registerVar(node *tree.Node, head **varScratch) {
	s := node.Symbol
	if s.Kind == tree.SymVar && s.Qualifier == tree.Auto && !findVariable(*head, s) {
		*head = &varScratch{symbol: s, next: *head}
	}
}
