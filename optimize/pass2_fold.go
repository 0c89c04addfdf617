package optimize

import (
	"fmt"

	"github.com/wcomp/tcc/tree"
)

// PassConstantFold builds pass 2's callback table: immediate
// computation of BINOP/UNOP operands that are already constant, a
// handful of algebraic identities, and self-assignment elimination.
// optcnt is incremented for every constant-producing rewrite so the
// outer fixed-point loop knows to run again.
func PassConstantFold(optcnt *int, pool *tree.Pool, opts Options) tree.Table {
	var table tree.Table
	table[tree.UNOP] = func(node *tree.Node) { pass2Unop(node, optcnt, pool, opts) }
	table[tree.BINOP] = func(node *tree.Node) { pass2Binop(node, optcnt, pool, opts) }
	table[tree.ASGN] = func(node *tree.Node) { pass2Asgn(node, pool, opts) }
	return table
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func pass2Binop(node *tree.Node, optcnt *int, pool *tree.Pool, opts Options) {
	left := node.Left
	right := node.Right

	switch {
	case left.Kind == tree.CONST && right.Kind == tree.CONST:
		evalBinopConst(node, optcnt, pool, opts)

	case left.Kind == tree.CONST && right.Kind == tree.VAR:
		if node.Opcode == tree.ADD && left.Number == 0 {
			evalBinopSimple(node, pool, opts)
		} else if node.Opcode == tree.MUL && (left.Number == 0 || left.Number == 1) {
			evalBinopSimple(node, pool, opts)
		}

	case left.Kind == tree.CONST && right.Kind == tree.BINOP:
		if (node.Opcode == tree.AND || node.Opcode == tree.OR) && left.Number != 0 {
			evalBinopSimpleLogic(node, opts)
		}
	}
}

// evalBinopConst folds a BINOP whose operands are both CONST. DIV is
// folded only when left > right, a deliberate guard the original
// keeps against both division-by-zero and the 0/1-collapsing cases —
// it also happens to skip well-defined folds like 6/3; left as-is
// (spec.md §9 design note b).
func evalBinopConst(node *tree.Node, optcnt *int, pool *tree.Pool, opts Options) {
	left := node.Left
	right := node.Right

	opts.logf(tree.Rewrites, "Optimizing node %04d (BINOP)\n", node.ID)

	var val int64
	switch node.Opcode {
	case tree.ADD:
		val = left.Number + right.Number
	case tree.SUB:
		val = left.Number - right.Number
	case tree.MUL:
		val = left.Number * right.Number
	case tree.DIV:
		if left.Number > right.Number {
			val = left.Number / right.Number
		} else {
			return
		}
	case tree.AND:
		val = boolToInt(left.Number != 0 && right.Number != 0)
	case tree.OR:
		val = boolToInt(left.Number != 0 || right.Number != 0)
	case tree.EQ:
		val = boolToInt(left.Number == right.Number)
	case tree.NE:
		val = boolToInt(left.Number != right.Number)
	case tree.LT:
		val = boolToInt(left.Number < right.Number)
	case tree.GT:
		val = boolToInt(left.Number > right.Number)
	case tree.LE:
		val = boolToInt(left.Number <= right.Number)
	case tree.GE:
		val = boolToInt(left.Number >= right.Number)
	case tree.NEG, tree.NOT:
		panic(fmt.Sprintf("optimize: pass2: node %04d: NEG/NOT cannot appear on a BINOP", node.ID))
	default:
		panic(fmt.Sprintf("optimize: pass2: node %04d has unexpected BINOP opcode %s", node.ID, node.Opcode))
	}

	pool.FreeNode(left)
	pool.FreeNode(right)
	node.Left, node.Right = nil, nil
	node.Kind = tree.CONST
	node.Number = val
	*optcnt++
}

// evalBinopSimple handles 0+x -> x, 0*x -> 0, 1*x -> x. Note: the
// source does not bump optcnt here even though 0*x produces a new
// constant — reproduced faithfully rather than "fixed", per spec.md §9.
func evalBinopSimple(node *tree.Node, pool *tree.Pool, opts Options) {
	left := node.Left
	right := node.Right

	opts.logf(tree.Rewrites, "Optimizing node %04d (BINOP)\n", node.ID)

	switch node.Opcode {
	case tree.MUL:
		if left.Number == 0 {
			node.Kind = tree.CONST
			node.Number = 0
		} else if left.Number == 1 {
			node.Kind = tree.VAR
			node.Symbol = right.Symbol
		}
	case tree.ADD:
		if left.Number == 0 {
			node.Kind = tree.VAR
			node.Symbol = right.Symbol
		}
	}

	pool.FreeNode(left)
	pool.FreeNode(right)
	node.Left, node.Right = nil, nil
}

// evalBinopSimpleLogic handles 1&&BINOP -> BINOP and 1||BINOP -> 1.
// Neither branch frees the displaced operands explicitly: they become
// unreachable once node adopts right's fields (AND case) or drops both
// children (OR case), and the sweep that follows every pass reclaims
// them. This mirrors the source exactly — it has no freenode calls
// here either.
func evalBinopSimpleLogic(node *tree.Node, opts Options) {
	right := node.Right

	opts.logf(tree.Rewrites, "Optimizing node %04d (BINOP)\n", node.ID)

	switch node.Opcode {
	case tree.AND:
		node.Kind = right.Kind
		node.Left = right.Left
		node.Right = right.Right
		node.Opcode = right.Opcode
	case tree.OR:
		node.Kind = tree.CONST
		node.Left = nil
		node.Right = nil
		node.Number = 1
	}
}

func pass2Unop(node *tree.Node, optcnt *int, pool *tree.Pool, opts Options) {
	operand := node.Left
	if operand.Kind != tree.CONST {
		return
	}

	node.Kind = tree.CONST
	node.Left = nil

	switch node.Opcode {
	case tree.NEG:
		node.Number = -operand.Number
	case tree.NOT:
		node.Number = boolToInt(operand.Number == 0)
	default:
		panic(fmt.Sprintf("optimize: pass2: node %04d has unexpected UNOP opcode %s", node.ID, node.Opcode))
	}

	pool.FreeNode(operand)
	*optcnt++
}

// pass2Asgn rewrites a direct self-assignment (x = x) to NOOP. The rhs
// is always an EXPR wrapper (tree.WrapExpr); only that wrapper is
// freed, its inner VAR node is reclaimed by the following sweep.
func pass2Asgn(node *tree.Node, pool *tree.Pool, opts Options) {
	rhs := node.Expr
	if rhs.Expr.Kind == tree.VAR && node.Symbol == rhs.Expr.Symbol {
		opts.logf(tree.Rewrites, "Optimizing node %04d (ASGN)\n", node.ID)

		pool.FreeNode(rhs)
		node.Expr = nil
		node.Kind = tree.NOOP
	}
}
