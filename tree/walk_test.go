package tree

import (
	"reflect"
	"testing"
)

// buildConstBinop builds CONST(left) OP CONST(right) as a BINOP node via
// the given pool.
func buildConstBinop(p *Pool, left, right int64, op Opcode) *Node {
	l := p.AddNode(CONST)
	l.Number = left
	r := p.AddNode(CONST)
	r.Number = right
	b := p.AddNode(BINOP)
	b.Opcode = op
	b.Left = l
	b.Right = r
	return b
}

func TestTraversePostOrderVisitsOperandsBeforeParent(t *testing.T) {
	p := NewPool()
	binop := buildConstBinop(p, 2, 3, ADD)
	expr := p.AddNode(EXPR)
	expr.Expr = binop

	var order []Kind
	var table Table
	table[CONST] = func(n *Node) { order = append(order, CONST) }
	table[BINOP] = func(n *Node) { order = append(order, BINOP) }
	table[EXPR] = func(n *Node) { order = append(order, EXPR) }

	Traverse(expr, table)

	want := []Kind{CONST, CONST, BINOP, EXPR}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("expected post-order %v, got %v", want, order)
	}
}

func TestTraverseRightChainVisitsStatementsInOrder(t *testing.T) {
	p := NewPool()
	s1 := p.AddNode(NOOP)
	s2 := p.AddNode(NOOP)
	s3 := p.AddNode(NOOP)
	s1.Right = s2
	s2.Right = s3

	var ids []uint64
	var table Table
	table[NOOP] = func(n *Node) { ids = append(ids, n.ID) }

	Traverse(s1, table)

	want := []uint64{1, 2, 3}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected statement order %v, got %v", want, ids)
	}
}

func TestTraverseConditionVisitsCondThenElse(t *testing.T) {
	p := NewPool()
	cond := p.AddNode(CONST)
	cond.Number = 1
	condExpr := p.AddNode(EXPR)
	condExpr.Expr = cond
	then := p.AddNode(NOOP)
	els := p.AddNode(NOOP)

	c := p.AddNode(CONDITION)
	c.Cond = condExpr
	c.Then = then
	c.Else = els

	var visited []uint64
	var table Table
	table[CONST] = func(n *Node) { visited = append(visited, n.ID) }
	table[NOOP] = func(n *Node) { visited = append(visited, n.ID) }
	table[CONDITION] = func(n *Node) { visited = append(visited, n.ID) }

	Traverse(c, table)

	want := []uint64{cond.ID, then.ID, els.ID, c.ID}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
}

func TestTraverseCallWalksArguments(t *testing.T) {
	p := NewPool()
	a1 := p.AddNode(CONST)
	a1.Number = 1
	a2 := p.AddNode(CONST)
	a2.Number = 2
	call := p.AddNode(CALL)
	call.Args = []*Node{a1, a2}

	var visited []uint64
	var table Table
	table[CONST] = func(n *Node) { visited = append(visited, n.ID) }
	table[CALL] = func(n *Node) { visited = append(visited, n.ID) }

	Traverse(call, table)

	want := []uint64{a1.ID, a2.ID, call.ID}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
}

func TestTraverseUnknownStatementKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a BINOP appearing as a statement")
		}
	}()
	n := &Node{ID: 1, Kind: BINOP}
	Traverse(n, Table{})
}
