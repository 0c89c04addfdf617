package tree

import "fmt"

// Table is a callback per node kind, invoked in post-order by Traverse.
// A nil entry means "do nothing for this kind".
type Table [numKinds]func(*Node)

// Traverse walks the right-chained statement list headed by node,
// invoking table's callbacks in post-order: every reachable child is
// visited before the callback for its parent fires. This is the single
// entry point every pass and the collector use; it never descends below
// a kind it does not understand — doing so is a front-end bug and panics
// rather than silently skipping structure.
func Traverse(node *Node, table Table) {
	for ; node != nil; node = node.Right {
		traverseStmt(node, table)
	}
}

func traverseStmt(node *Node, table Table) {
	switch node.Kind {
	case CALL:
		traverseArgs(node, table)
	case ASGN:
		traverseExpr(node.Expr, table)
	case EXPR, RETURN, PRINT:
		traverseExpr(node.Expr, table)
	case JUMP, NOOP:
		// leaves
	case COMPOUND:
		Traverse(node.Expr, table)
	case ITERATION:
		traverseExpr(node.Cond, table)
		Traverse(node.Body, table)
	case CONDITION:
		traverseExpr(node.Cond, table)
		Traverse(node.Then, table)
		Traverse(node.Else, table)
	case VARDECL:
		traverseExpr(node.Expr, table)
	case FNCDECL:
		Traverse(node.Expr, table)
	default:
		panic(fmt.Sprintf("tree: Traverse: node %d has kind %s, which cannot appear as a statement", node.ID, node.Kind))
	}
	if cb := table[node.Kind]; cb != nil {
		cb(node)
	}
}

func traverseExpr(node *Node, table Table) {
	if node == nil {
		return
	}
	traverseExpr(node.Left, table)
	traverseExpr(node.Right, table)

	switch node.Kind {
	case CALL:
		traverseArgs(node, table)
	case EXPR:
		traverseExpr(node.Expr, table)
	case BINOP, UNOP, CONST, VAR, NOOP:
		// leaves; BINOP/UNOP's operands already walked via Left/Right above
	default:
		panic(fmt.Sprintf("tree: Traverse: node %d has kind %s, which cannot appear as an expression", node.ID, node.Kind))
	}
	if cb := table[node.Kind]; cb != nil {
		cb(node)
	}
}

func traverseArgs(node *Node, table Table) {
	for _, arg := range node.Args {
		traverseExpr(arg, table)
	}
}
