package tree

import (
	"strings"
	"testing"
)

func TestFprintConstNode(t *testing.T) {
	p := NewPool()
	c := p.AddNode(CONST)
	c.Number = 5

	var sb strings.Builder
	Fprint(&sb, c)

	out := sb.String()
	if !strings.Contains(out, "0001") {
		t.Fatalf("expected zero-padded id 0001 in output, got %q", out)
	}
	if !strings.Contains(out, "NIL") {
		t.Fatalf("expected NIL for the absent left/right children, got %q", out)
	}
	if !strings.Contains(out, "NODE_CONST") {
		t.Fatalf("expected kind name NODE_CONST, got %q", out)
	}
	if !strings.Contains(out, "number = 5") {
		t.Fatalf("expected payload number = 5, got %q", out)
	}
}

func TestFprintReproducesGELabelQuirk(t *testing.T) {
	p := NewPool()
	l := p.AddNode(CONST)
	r := p.AddNode(CONST)
	b := p.AddNode(BINOP)
	b.Opcode = GE
	b.Left = l
	b.Right = r

	var sb strings.Builder
	Fprint(&sb, b)

	if !strings.Contains(sb.String(), "opcode = OPCODE_GT") {
		t.Fatalf("GE must print as OPCODE_GT, reproducing the source's labeling quirk; got %q", sb.String())
	}
}

func TestFprintUnopPrintsNumericOpcode(t *testing.T) {
	p := NewPool()
	operand := p.AddNode(CONST)
	u := p.AddNode(UNOP)
	u.Opcode = NEG
	u.Left = operand

	var sb strings.Builder
	Fprint(&sb, u)

	if !strings.Contains(sb.String(), "opcode = 4") {
		t.Fatalf("UNOP prints the raw numeric opcode (NEG=4), got %q", sb.String())
	}
}
