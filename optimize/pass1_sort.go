package optimize

import (
	"fmt"

	"github.com/wcomp/tcc/tree"
)

// PassOperandSort builds pass 1's callback table: BINOP operand
// sorting. Constants move right-to-left, and two chained BINOPs on a
// constant spine get transposed so a later fold sees two adjacent
// constants. The walk is post-order, so by the time a BINOP's callback
// fires its own operands are already in final form for this pass —
// pass1_binop is therefore idempotent on a single subtree within one
// sweep (spec.md P5).
func PassOperandSort(opts Options) tree.Table {
	var table tree.Table
	table[tree.BINOP] = func(node *tree.Node) { pass1Binop(node, opts) }
	return table
}

func pass1Binop(node *tree.Node, opts Options) {
	if node.Right.Kind == tree.CONST {
		if node.Left.Kind == tree.CONST {
			return // pass 2 folds two constants directly
		}
		swapNodes(node, opts)
	}

	if node.Left.Kind == tree.BINOP {
		transposeLeft(node, opts)
	}

	switch node.Right.Kind {
	case tree.BINOP:
		transpose(node, opts)
	case tree.UNOP:
		// nothing to do
	}
}

func simpleSwap(node *tree.Node, opts Options) {
	opts.logf(tree.Rewrites, "Swap in node %04d\n", node.ID)
	node.Left, node.Right = node.Right, node.Left
}

func swapNodes(node *tree.Node, opts Options) {
	switch node.Opcode {
	case tree.ADD, tree.MUL, tree.AND, tree.OR, tree.EQ, tree.NE:
		simpleSwap(node, opts)
	case tree.SUB:
		simpleSwap(node, opts)
		node.Left.Number = -node.Left.Number
		node.Opcode = tree.ADD
	case tree.DIV:
		// non-commutative without inversion: leave as-is
	case tree.LT, tree.GT, tree.LE, tree.GE:
		// non-associative comparisons: leave as-is
	default:
		panic(fmt.Sprintf("optimize: pass1: node %04d has unexpected opcode %s for a BINOP", node.ID, node.Opcode))
	}
}

// invertOpcode swaps an additive/multiplicative opcode for its inverse;
// used by transpose0's opcode rotation. Any other opcode reaching here
// is a front-end bug.
func invertOpcode(op tree.Opcode) tree.Opcode {
	switch op {
	case tree.ADD:
		return tree.SUB
	case tree.SUB:
		return tree.ADD
	case tree.MUL:
		return tree.DIV
	case tree.DIV:
		return tree.MUL
	default:
		panic("optimize: invertOpcode: opcode has no inverse: " + op.String())
	}
}

// transpose0 rotates node and its right BINOP child:
//
//	C1 + (C2 +|- V)  =  (C1 + C2) +|- V
//	C1 - (C2 +|- V)  =  (C1 - C2) -|+ V
//
// and the multiplicative analog. Reproduces transpose0's field rewiring
// exactly, including the trailing node.Left.Left assignment which is
// redundant (already equal by construction) but kept for fidelity to
// the source.
func transpose0(node *tree.Node, opts Options) {
	opts.logf(tree.Rewrites, "Transpose, node %04d\n", node.ID)

	left := node.Left
	right := node.Right
	op := node.Opcode
	rop := right.Opcode

	node.Right = right.Right
	right.Right = right.Left
	right.Left = left
	node.Left = right

	node.Left.Opcode = op
	if op == tree.ADD || op == tree.MUL {
		node.Opcode = rop
	} else {
		node.Opcode = invertOpcode(rop)
	}
	node.Left.Left = left
}

func transpose(node *tree.Node, opts Options) {
	switch node.Opcode {
	case tree.ADD, tree.SUB:
		switch node.Right.Opcode {
		case tree.ADD, tree.SUB:
			transpose0(node, opts)
		}
	case tree.MUL, tree.DIV:
		switch node.Right.Opcode {
		case tree.MUL, tree.DIV:
			transpose0(node, opts)
		}
	}
}

// transposeLeft0 rewrites C1 * X / C2 = (C1 / C2) * X (and, with an
// outer MUL, C1 * X * C2 = (C1 * C2) * X), only when the left child is
// MUL(CONST, _) and the outer right operand is itself a constant.
func transposeLeft0(node *tree.Node, opts Options) {
	left := node.Left
	right := node.Right
	if left.Kind == tree.BINOP && left.Opcode == tree.MUL &&
		left.Left.Kind == tree.CONST && right.Kind == tree.CONST {
		opts.logf(tree.Rewrites, "Transpose, node %04d\n", node.ID)

		op := node.Opcode
		node.Opcode = left.Opcode
		left.Opcode = op

		s := left.Right
		left.Right = node.Right
		node.Right = s
	}
}

func transposeLeft(node *tree.Node, opts Options) {
	switch node.Opcode {
	case tree.ADD, tree.SUB:
		// nothing to do
	case tree.MUL, tree.DIV:
		transposeLeft0(node, opts)
	}
}
