package tree

import (
	"fmt"
	"io"
)

// Fprint writes a node and everything reachable from it via the
// non-structural payload fields (Expr/Cond/Then/Else/Args) in the
// source's original, slightly idiosyncratic traversal order: after
// printing the current node, if it has no Right it drops straight to
// Left, if it has no Left it drops straight to Right, and only when it
// has both does it recurse into Right then Left and stop. This is the
// format spec.md §6 names: three zero-padded 4-digit identifiers
// (self, left, right; NIL where absent), a tab, the kind name, and
// kind-specific payload.
func Fprint(w io.Writer, node *Node) {
	for node != nil {
		fprintIDs(w, node)
		fprintPayload(w, node)

		if node.Right == nil {
			node = node.Left
			continue
		}
		if node.Left == nil {
			node = node.Right
			continue
		}
		Fprint(w, node.Right)
		Fprint(w, node.Left)
		return
	}
}

func fprintID(w io.Writer, n *Node) {
	if n != nil {
		fmt.Fprintf(w, " %4.4d", n.ID)
	} else {
		fmt.Fprintf(w, " %4.4s", "NIL")
	}
}

func fprintIDs(w io.Writer, node *Node) {
	fprintID(w, node)
	fprintID(w, node.Left)
	fprintID(w, node.Right)
}

func fprintPayload(w io.Writer, node *Node) {
	switch node.Kind {
	case NOOP:
		fmt.Fprintf(w, "\t %s\n", NOOP)
	case BINOP:
		fmt.Fprintf(w, "\t %s\t opcode = %s\n", BINOP, node.Opcode)
	case UNOP:
		// The source prints the raw numeric opcode for UNOP, not its
		// string form (print_unop uses "%d" where print_binop uses the
		// switch-to-string helper). Reproduced, not "fixed".
		fmt.Fprintf(w, "\t %s\t opcode = %d\n", UNOP, int(node.Opcode))
	case CONST:
		fmt.Fprintf(w, "\t %s\t number = %d\n", CONST, node.Number)
	case VAR:
		name := "NIL"
		if node.Symbol != nil {
			name = node.Symbol.Name
		}
		fmt.Fprintf(w, "\t %s\t var = %s\n", VAR, name)
	case CALL:
		fmt.Fprintf(w, "\t %s\t node =", CALL)
		if node.Symbol != nil {
			fprintID(w, node.Symbol.Body)
		} else {
			fprintID(w, nil)
		}
		fmt.Fprintf(w, ", args = ")
		for _, a := range node.Args {
			fmt.Fprintf(w, "%4.4d ", a.ID)
		}
		fmt.Fprintln(w)
		for _, a := range node.Args {
			Fprint(w, a)
		}
	case ASGN:
		name := "NIL"
		if node.Symbol != nil {
			name = node.Symbol.Name
		}
		fmt.Fprintf(w, "\t %s\t var = %s, expr =", ASGN, name)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	case EXPR:
		fmt.Fprintf(w, "\t %s\t expr =", EXPR)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	case RETURN:
		fmt.Fprintf(w, "\t %s\t expr =", RETURN)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	case PRINT:
		fmt.Fprintf(w, "\t %s\t expr =", PRINT)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	case JUMP:
		fmt.Fprintf(w, "\t %s\t type = %s level = %d\n", JUMP, node.JumpKind, node.JumpLevel)
	case COMPOUND:
		fmt.Fprintf(w, "\t %s\t expr =", COMPOUND)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	case ITERATION:
		fmt.Fprintf(w, "\t %s\t cond =", ITERATION)
		fprintID(w, node.Cond)
		fmt.Fprintf(w, ", stmt =")
		fprintID(w, node.Body)
		fmt.Fprintln(w)
		Fprint(w, node.Cond)
		Fprint(w, node.Body)
	case CONDITION:
		fmt.Fprintf(w, "\t %s\t cond =", CONDITION)
		fprintID(w, node.Cond)
		fmt.Fprintf(w, ", iftrue =")
		fprintID(w, node.Then)
		fmt.Fprintf(w, ", iffalse =")
		fprintID(w, node.Else)
		fmt.Fprintln(w)
		Fprint(w, node.Cond)
		Fprint(w, node.Then)
		Fprint(w, node.Else)
	case VARDECL:
		name := "NIL"
		if node.Symbol != nil {
			name = node.Symbol.Name
		}
		fmt.Fprintf(w, "\t %s\t name = %s, expr =", VARDECL, name)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	case FNCDECL:
		name := "NIL"
		if node.Symbol != nil {
			name = node.Symbol.Name
		}
		fmt.Fprintf(w, "\t %s\t name = %s, stmt =", FNCDECL, name)
		fprintID(w, node.Expr)
		fmt.Fprintln(w)
		Fprint(w, node.Expr)
	default:
		panic(fmt.Sprintf("tree: Fprint: unknown node kind %d", node.Kind))
	}
}
