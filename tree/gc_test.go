package tree

import "testing"

func TestSweepReclaimsUnreachableNodes(t *testing.T) {
	p := NewPool()
	root := p.AddNode(NOOP)
	garbage := p.AddNode(CONST) // allocated but never linked into the tree

	_ = garbage

	var freed []uint64
	Sweep(p, root, func(n *Node) { freed = append(freed, n.ID) })

	if p.LiveCount() != 1 {
		t.Fatalf("expected 1 live node (root) after sweep, got %d", p.LiveCount())
	}
	if len(freed) != 1 || freed[0] != garbage.ID {
		t.Fatalf("expected garbage node %d to be freed, got %v", garbage.ID, freed)
	}

	sawRoot := false
	p.Live(func(n *Node) {
		if n.ID == root.ID {
			sawRoot = true
		}
	})
	if !sawRoot {
		t.Fatal("P1: root must remain on the live list after sweep")
	}
}

func TestSweepKeepsEverythingReachableFromRoot(t *testing.T) {
	p := NewPool()
	leftConst := p.AddNode(CONST)
	rightConst := p.AddNode(CONST)
	binop := p.AddNode(BINOP)
	binop.Left = leftConst
	binop.Right = rightConst
	expr := p.AddNode(EXPR)
	expr.Expr = binop
	root := expr

	var freed []uint64
	Sweep(p, root, func(n *Node) { freed = append(freed, n.ID) })

	if len(freed) != 0 {
		t.Fatalf("expected nothing freed, everything is reachable; got %v", freed)
	}
	if p.LiveCount() != 4 {
		t.Fatalf("expected 4 live nodes, got %d", p.LiveCount())
	}
}

func TestSweepLiveCounterMatchesLiveListLength(t *testing.T) {
	p := NewPool()
	root := p.AddNode(NOOP)
	for i := 0; i < 5; i++ {
		p.AddNode(CONST)
	}

	Sweep(p, root, nil)

	n := 0
	p.Live(func(*Node) { n++ })
	if n != p.LiveCount() {
		t.Fatalf("P3: live counter (%d) must equal live list length (%d)", p.LiveCount(), n)
	}
}
