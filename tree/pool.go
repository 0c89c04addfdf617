package tree

import "fmt"

// Pool owns every Node ever allocated during a compilation. It tracks
// two singly-linked lists: Live (nodes currently part of, or reachable
// from, the tree) and Free (slots available for reuse). A third,
// transient list is used only by Sweep (see gc.go); it never persists
// between calls.
//
// Pool is not safe for concurrent use: spec.md §5 is explicit that this
// system is single-threaded and there is exactly one pool per
// compilation, owned by the Compiler value that drives it.
type Pool struct {
	live      *Node
	free      *Node
	liveCount int

	lastID uint64
}

// NewPool returns an empty pool ready for AddNode.
func NewPool() *Pool {
	return &Pool{}
}

// AddNode allocates a node of the given kind, preferring a free-list
// slot over a fresh allocation, zeroing it, assigning the next
// identifier, and pushing it onto the live list. Identifiers are
// monotonic and never reused even though slot memory is.
func (p *Pool) AddNode(kind Kind) *Node {
	var n *Node
	if p.free != nil {
		n = p.free
		p.free = p.free.poolLink
		*n = Node{}
	} else {
		n = &Node{}
	}

	p.lastID++
	n.ID = p.lastID
	n.Kind = kind

	poolAppend(&p.live, n)
	p.liveCount++
	return n
}

// FreeNode unlinks node from the live list and pushes it onto the free
// list. The caller must not free the same node twice; Pool does not
// guard against double-free (matching freenode's contract in the
// source: "Idempotence is not required").
func (p *Pool) FreeNode(node *Node) {
	poolRemove(&p.live, node)
	poolAppend(&p.free, node)
	p.liveCount--
}

// LiveCount reports the number of nodes currently on the live list.
// Callers use this to check P3 ("the live counter equals the length of
// the live list at every quiescent moment") after a batch of frees.
func (p *Pool) LiveCount() int { return p.liveCount }

// LastID returns the most recently assigned node identifier, i.e. the
// total number of nodes ever allocated by this pool.
func (p *Pool) LastID() uint64 { return p.lastID }

// Live calls fn for every node on the live list, in list order (most
// recently pushed first: allocation order reversed, or, after a Sweep,
// the walk's visiting order reversed). fn must not mutate the live list.
func (p *Pool) Live(fn func(*Node)) {
	for n := p.live; n != nil; n = n.poolLink {
		fn(n)
	}
}

// poolAppend pushes node onto the front of the list rooted at *head.
// O(1), matching mpool_append's prepend semantics (named "append" in
// the source for the list-as-stack it actually is).
func poolAppend(head **Node, node *Node) {
	node.poolLink = *head
	*head = node
}

// poolRemove unlinks node from the list rooted at *head by pointer
// identity. O(n). Removing from an empty list, or a node not present,
// is a silent no-op (mirrors mpool_remove).
func poolRemove(head **Node, node *Node) {
	if *head == nil {
		return
	}
	if *head == node {
		*head = node.poolLink
		node.poolLink = nil
		return
	}
	prev := *head
	for cur := prev.poolLink; cur != nil; cur = cur.poolLink {
		if cur == node {
			prev.poolLink = cur.poolLink
			cur.poolLink = nil
			return
		}
		prev = cur
	}
}

// FreeAll drains both the live and free lists, releasing every slot.
// If the live counter disagrees with an empty live list at the end —
// it never should, since draining decrements it in lockstep — FreeAll
// panics with the same "Panic!" diagnostic the source prints, since
// that condition indicates a bookkeeping bug in this package, not in
// caller code.
func (p *Pool) FreeAll() {
	for n := p.live; n != nil; {
		next := n.poolLink
		n.poolLink = nil
		p.liveCount--
		n = next
	}
	p.live = nil

	for n := p.free; n != nil; {
		next := n.poolLink
		n.poolLink = nil
		n = next
	}
	p.free = nil

	if p.liveCount != 0 {
		panic(fmt.Sprintf("tree: Panic! %d node(s) not freed", p.liveCount))
	}
}
