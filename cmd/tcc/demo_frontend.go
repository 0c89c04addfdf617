package main

import (
	"io"

	"github.com/wcomp/tcc/compiler"
	"github.com/wcomp/tcc/symtab"
	"github.com/wcomp/tcc/tree"
)

// FrontEnd returns the compiler.FrontEnd this binary drives. A real
// lexer and parser are out of scope for this module (spec.md §2); in
// their place this returns demoFrontEnd, which ignores its input and
// builds a small fixed program illustrating every pass, so the CLI's
// banners, tree dumps, and symbol table output can be exercised without
// a source language to parse. Replacing this with a real FrontEnd is
// the only change needed to turn this binary into an actual compiler.
func FrontEnd() compiler.FrontEnd {
	return demoFrontEnd{}
}

// demoFrontEnd builds:
//
//	fnc add(a, b) {
//	    auto unused;
//	    return a + b;
//	}
//	fnc main() {
//	    auto x;
//	    x = 2 + 3;
//	    if (1) print x; else print 0;
//	}
//
// which exercises: parameter and automatic-variable layout, pass 1's
// operand sort (trivially, both operands already in order), pass 2's
// constant fold, pass 4's removal of the unreferenced `unused`
// automatic variable, and pass 5's constant-condition splice.
type demoFrontEnd struct{}

func (demoFrontEnd) Parse(_ io.Reader, c *compiler.Compiler) error {
	addFn := buildAdd(c)
	mainFn := buildMain(c)
	addFn.Right = mainFn
	c.Root = addFn
	return nil
}

func buildAdd(c *compiler.Compiler) *tree.Node {
	fn := symtab.Put(&c.Symbols.Functions, "add", tree.SymFnc, 1)

	a := symtab.Put(&c.Symbols.Variables, "a", tree.SymVar, 1)
	a.Qualifier = tree.Parameter
	b := symtab.Put(&c.Symbols.Variables, "b", tree.SymVar, 1)
	b.Qualifier = tree.Parameter
	fn.NumParam = 2
	fn.Params = tree.MakeSymList(a, tree.MakeSymList(b, nil))

	unused := symtab.Put(&c.Symbols.Variables, "unused", tree.SymVar, 2)
	unused.Qualifier = tree.Auto

	decl := c.Pool.AddNode(tree.VARDECL)
	decl.Symbol = unused

	sum := c.Pool.AddNode(tree.BINOP)
	sum.Opcode = tree.ADD
	sum.Left = varRef(c, a)
	sum.Right = varRef(c, b)

	ret := c.Pool.AddNode(tree.RETURN)
	ret.Expr = c.Pool.WrapExpr(sum)
	decl.Right = ret

	body := c.Pool.AddNode(tree.COMPOUND)
	body.Expr = decl
	fn.Body = body

	fnDecl := c.Pool.AddNode(tree.FNCDECL)
	fnDecl.Symbol = fn
	fnDecl.Expr = body
	return fnDecl
}

func buildMain(c *compiler.Compiler) *tree.Node {
	fn := symtab.Put(&c.Symbols.Functions, "main", tree.SymFnc, 4)
	fn.NumParam = 0

	x := symtab.Put(&c.Symbols.Variables, "x", tree.SymVar, 5)
	x.Qualifier = tree.Auto

	decl := c.Pool.AddNode(tree.VARDECL)
	decl.Symbol = x

	sum := c.Pool.AddNode(tree.BINOP)
	sum.Opcode = tree.ADD
	sum.Left = constNode(c, 2)
	sum.Right = constNode(c, 3)

	asgn := c.Pool.AddNode(tree.ASGN)
	asgn.Symbol = x
	asgn.Expr = c.Pool.WrapExpr(sum)
	decl.Right = asgn

	thenPrint := c.Pool.AddNode(tree.PRINT)
	thenPrint.Expr = c.Pool.WrapExpr(varRef(c, x))

	elsePrint := c.Pool.AddNode(tree.PRINT)
	elsePrint.Expr = c.Pool.WrapExpr(constNode(c, 0))

	cond := c.Pool.AddNode(tree.CONDITION)
	cond.Cond = c.Pool.WrapExpr(constNode(c, 1))
	cond.Then = thenPrint
	cond.Else = elsePrint
	asgn.Right = cond

	body := c.Pool.AddNode(tree.COMPOUND)
	body.Expr = decl
	fn.Body = body

	fnDecl := c.Pool.AddNode(tree.FNCDECL)
	fnDecl.Symbol = fn
	fnDecl.Expr = body
	return fnDecl
}

func varRef(c *compiler.Compiler, sym *tree.Symbol) *tree.Node {
	v := c.Pool.AddNode(tree.VAR)
	v.Symbol = sym
	return v
}

func constNode(c *compiler.Compiler, n int64) *tree.Node {
	v := c.Pool.AddNode(tree.CONST)
	v.Number = n
	return v
}
