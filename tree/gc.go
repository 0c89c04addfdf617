package tree

// Sweep runs mark-and-sweep with root as the sole GC root. It does not
// use mark bits: list membership is the mark. A transient list absorbs
// every node the walker visits (the "mark" table moves each visited
// node off the live list); whatever is left on the live list afterwards
// was not reached from root this pass and becomes garbage.
//
// onFree, if non-nil, is called once per node moved to the free list —
// the hook verbosity level 2 diagnostics (spec.md §6) hang off of.
func Sweep(p *Pool, root *Node, onFree func(*Node)) {
	var reached *Node
	mark := func(n *Node) {
		poolRemove(&p.live, n)
		poolAppend(&reached, n)
	}

	var table Table
	for k := Kind(0); k < numKinds; k++ {
		table[k] = mark
	}
	Traverse(root, table)

	for n := p.live; n != nil; {
		next := n.poolLink
		poolAppend(&p.free, n)
		p.liveCount--
		if onFree != nil {
			onFree(n)
		}
		n = next
	}
	p.live = reached
}
