package optimize

import (
	"github.com/wcomp/tcc/tree"
)

// PassConstantPropagate builds pass 3's callback table. VAR_DECL and
// ASGN record their rhs EXPR wrapper as the symbol's current entry
// point; a VAR reference whose symbol is currently constant-valued is
// replaced by the constant it holds. Because the walk is post-order and
// statement lists are walked in source order, last-write-wins on a
// straight-line path — this pass does not reset entry points at merge
// points, so it is deliberately unsound across branches and loops
// (spec.md §4.E, §9 design note c).
func PassConstantPropagate(optcnt *int, opts Options) tree.Table {
	var table tree.Table
	table[tree.VARDECL] = pass3VarDecl
	table[tree.ASGN] = pass3Asgn
	table[tree.VAR] = func(node *tree.Node) { pass3Var(node, optcnt, opts) }
	return table
}

func pass3VarDecl(node *tree.Node) {
	node.Symbol.EntryPoint = node.Expr
}

func pass3Asgn(node *tree.Node) {
	node.Symbol.EntryPoint = node.Expr
}

// isConstValued reports whether s's current entry point is an EXPR
// wrapper around a CONST, i.e. whether every reference to s on this
// traversal path can be replaced by that constant.
func isConstValued(s *tree.Symbol) bool {
	return s != nil && s.EntryPoint != nil && s.EntryPoint.Expr != nil && s.EntryPoint.Expr.Kind == tree.CONST
}

func pass3Var(node *tree.Node, optcnt *int, opts Options) {
	s := node.Symbol
	if !isConstValued(s) {
		return
	}

	opts.logf(tree.Rewrites, "Optimizing node %04d (VAR)\n", node.ID)

	node.Number = s.EntryPoint.Expr.Number
	node.Kind = tree.CONST
	*optcnt++
}
