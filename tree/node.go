package tree

// Node is a single parse-tree node. The field set is a union in spirit
// (only the fields relevant to Kind are meaningful at any one time) but
// Go has no tagged union, so it is expressed as one flat struct with
// kind-discriminated fields, per the generalized-traversal design this
// module follows throughout.
//
// Left and Right serve double duty: for an expression node they are the
// two operands of a UNOP/BINOP; for a statement they are unused except
// that Right right-chains the node to the next statement in its list
// (spec invariant I5). poolLink is the pool's own intrusive list
// pointer and is never touched outside package tree.
type Node struct {
	ID   uint64
	Kind Kind

	Left  *Node
	Right *Node

	poolLink *Node

	// UNOP / BINOP
	Opcode Opcode

	// CONST
	Number int64

	// VAR: weak reference to the symbol this node reads.
	// ASGN / VARDECL / FNCDECL / CALL: weak reference to the target/callee.
	Symbol *Symbol

	// CALL argument list, evaluated left to right.
	Args []*Node

	// EXPR, COMPOUND, RETURN, PRINT: single child.
	// ASGN: right-hand-side expression.
	// VARDECL: initializer expression.
	// FNCDECL: function body (a statement, reusing this field rather than
	// adding a Body field the other kinds would leave unused).
	Expr *Node

	// JUMP
	JumpKind  JumpKind
	JumpLevel uint

	// ITERATION
	Cond *Node
	Body *Node

	// CONDITION (Cond reused from ITERATION)
	Then *Node
	Else *Node
}
