package optimize

import "github.com/wcomp/tcc/tree"

// PassDeadVariableMark builds pass 4's first sub-pass: it counts every
// reference to a symbol (a VAR read or an ASGN target). Symbols start
// at RefCount 0 by construction, so there is nothing to reset here —
// this assumes Run is called once per freshly built tree; a caller
// reusing the same symbols across multiple Run calls must reset
// RefCount itself.
func PassDeadVariableMark() tree.Table {
	var table tree.Table
	table[tree.VAR] = func(node *tree.Node) { node.Symbol.RefCount++ }
	table[tree.ASGN] = func(node *tree.Node) { node.Symbol.RefCount++ }
	return table
}

// PassDeadVariableSweep builds pass 4's second sub-pass: any VAR_DECL
// whose symbol was never referenced becomes NOOP. The declaration's
// initializer is orphaned, not explicitly freed, and reclaimed by the
// sweep that follows this pass.
func PassDeadVariableSweep(opts Options) tree.Table {
	var table tree.Table
	table[tree.VARDECL] = func(node *tree.Node) { pass4bVarDecl(node, opts) }
	return table
}

func pass4bVarDecl(node *tree.Node, opts Options) {
	if node.Symbol.RefCount != 0 {
		return
	}

	kind := "automatic"
	if node.Symbol.Qualifier == tree.Global {
		kind = "global"
	}
	opts.logf(tree.Rewrites, "Removing unused %s variable %s (node %04d)\n", kind, node.Symbol.Name, node.ID)

	node.Kind = tree.NOOP
}
