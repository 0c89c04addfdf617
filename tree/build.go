package tree

// WrapExpr allocates an EXPR node wrapping inner. The front-end wraps
// every expression production this way before handing it to a
// statement-level field (ASGN's rhs, VAR_DECL's initializer, RETURN/
// PRINT's operand, a CONDITION or ITERATION's condition) — the
// optimizer's constant-propagation pass (spec.md §4.E pass 3) relies on
// a symbol's EntryPoint always being one of these wrappers, never a
// bare value node, so that VAR_IS_CONST-style checks can uniformly look
// one level down via .Expr.
func (p *Pool) WrapExpr(inner *Node) *Node {
	e := p.AddNode(EXPR)
	e.Expr = inner
	return e
}
