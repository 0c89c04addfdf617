package optimize

import "github.com/wcomp/tcc/tree"

// PassConstantCondition builds pass 5's callback table: a CONDITION
// whose test is the constant 1 or 0 is replaced by whichever branch is
// live, spliced into the statement right-chain in the CONDITION's
// place; the other branch becomes unreachable and is reclaimed by the
// sweep that follows this pass. A CONDITION whose test is any other
// constant is left unchanged.
func PassConstantCondition(opts Options) tree.Table {
	var table tree.Table
	table[tree.CONDITION] = func(node *tree.Node) { pass5Condition(node, opts) }
	return table
}

func pass5Condition(node *tree.Node, opts Options) {
	cond := node.Cond
	if cond.Expr.Kind != tree.CONST {
		return
	}

	switch cond.Expr.Number {
	case 1:
		opts.logf(tree.Rewrites, "Eliminating conditional, node %04d (always true)\n", node.ID)
		node.Then.Right = node.Right
		node.Right = node.Then
		node.Kind = tree.NOOP
	case 0:
		opts.logf(tree.Rewrites, "Eliminating conditional, node %04d (always false)\n", node.ID)
		node.Else.Right = node.Right
		node.Right = node.Else
		node.Kind = tree.NOOP
	}
}
