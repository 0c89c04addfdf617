package layout

import (
	"testing"

	"github.com/wcomp/tcc/tree"
)

func newAutoVar(p *tree.Pool, sym *tree.Symbol) *tree.Node {
	v := p.AddNode(tree.VAR)
	v.Symbol = sym
	return v
}

// TestParametersNumberedDownFromCount covers v5/symbol.c's
// compute_stack_and_data parameter loop: parameters are numbered
// nparam, nparam-1, ..., 1 in Params list order.
func TestParametersNumberedDownFromCount(t *testing.T) {
	a := &tree.Symbol{Name: "a", Kind: tree.SymVar, Qualifier: tree.Parameter}
	b := &tree.Symbol{Name: "b", Kind: tree.SymVar, Qualifier: tree.Parameter}
	c := &tree.Symbol{Name: "c", Kind: tree.SymVar, Qualifier: tree.Parameter}

	params := tree.MakeSymList(a, tree.MakeSymList(b, tree.MakeSymList(c, nil)))

	fn := &tree.Symbol{Name: "f", Kind: tree.SymFnc, NumParam: 3, Params: params}

	ComputeStackAndData(fn, nil)

	if a.RelAddress != 3 || b.RelAddress != 2 || c.RelAddress != 1 {
		t.Fatalf("got a=%d b=%d c=%d, want 3,2,1", a.RelAddress, b.RelAddress, c.RelAddress)
	}
}

// TestAutoVariablesNumberedInReverseDiscoveryOrder covers
// compute_auto_offsets: automatic variables referenced in a function
// body are numbered 1, 2, ... in the reverse of the order they were
// first encountered during the walk (the source's scratch list is
// built by prepending).
func TestAutoVariablesNumberedInReverseDiscoveryOrder(t *testing.T) {
	p := tree.NewPool()
	x := &tree.Symbol{Name: "x", Kind: tree.SymVar, Qualifier: tree.Auto}
	y := &tree.Symbol{Name: "y", Kind: tree.SymVar, Qualifier: tree.Auto}

	stmt1 := p.AddNode(tree.EXPR)
	stmt1.Expr = newAutoVar(p, x)
	stmt2 := p.AddNode(tree.EXPR)
	stmt2.Expr = newAutoVar(p, y)
	stmt1.Right = stmt2

	fn := &tree.Symbol{Name: "f", Kind: tree.SymFnc, Body: stmt1}

	ComputeStackAndData(fn, nil)

	if fn.NumAuto != 2 {
		t.Fatalf("got NumAuto=%d, want 2", fn.NumAuto)
	}
	if y.RelAddress != 1 {
		t.Fatalf("got y.RelAddress=%d, want 1 (discovered last, numbered first)", y.RelAddress)
	}
	if x.RelAddress != 2 {
		t.Fatalf("got x.RelAddress=%d, want 2", x.RelAddress)
	}
}

// TestAutoVariableDeduplicated covers find_variable: a variable
// referenced more than once in a body is only counted once.
func TestAutoVariableDeduplicated(t *testing.T) {
	p := tree.NewPool()
	x := &tree.Symbol{Name: "x", Kind: tree.SymVar, Qualifier: tree.Auto}

	stmt1 := p.AddNode(tree.EXPR)
	stmt1.Expr = newAutoVar(p, x)
	stmt2 := p.AddNode(tree.EXPR)
	stmt2.Expr = newAutoVar(p, x)
	stmt1.Right = stmt2

	fn := &tree.Symbol{Name: "f", Kind: tree.SymFnc, Body: stmt1}

	ComputeStackAndData(fn, nil)

	if fn.NumAuto != 1 {
		t.Fatalf("got NumAuto=%d, want 1 (x referenced twice)", fn.NumAuto)
	}
	if x.RelAddress != 1 {
		t.Fatalf("got x.RelAddress=%d, want 1", x.RelAddress)
	}
}

// TestGlobalsNumberedInListOrder covers compute_stack_and_data's global
// variable loop: globals are numbered 1, 2, ... in symbol-list order.
func TestGlobalsNumberedInListOrder(t *testing.T) {
	g1 := &tree.Symbol{Name: "g1", Kind: tree.SymVar, Qualifier: tree.Global}
	g2 := &tree.Symbol{Name: "g2", Kind: tree.SymVar, Qualifier: tree.Global}
	g1.ListNext = g2

	ComputeStackAndData(nil, g1)

	if g1.RelAddress != 1 || g2.RelAddress != 2 {
		t.Fatalf("got g1=%d g2=%d, want 1,2", g1.RelAddress, g2.RelAddress)
	}
}
