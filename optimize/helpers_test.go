package optimize

import "github.com/wcomp/tcc/tree"

func newConst(p *tree.Pool, n int64) *tree.Node {
	c := p.AddNode(tree.CONST)
	c.Number = n
	return c
}

func newVar(p *tree.Pool, sym *tree.Symbol) *tree.Node {
	v := p.AddNode(tree.VAR)
	v.Symbol = sym
	return v
}

func newBinop(p *tree.Pool, op tree.Opcode, left, right *tree.Node) *tree.Node {
	b := p.AddNode(tree.BINOP)
	b.Opcode = op
	b.Left = left
	b.Right = right
	return b
}

func newVarSymbol(name string, qualifier tree.Qualifier, level int) *tree.Symbol {
	return &tree.Symbol{Name: name, Kind: tree.SymVar, Qualifier: qualifier, Level: level}
}

func runFull(p *tree.Pool, root *tree.Node, level int) {
	Run(p, root, Options{Level: level})
}
