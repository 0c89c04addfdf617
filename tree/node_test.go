package tree

import "testing"

func TestOpcodeString(t *testing.T) {
	cases := map[Opcode]string{
		ADD: "OPCODE_ADD",
		DIV: "OPCODE_DIV",
		GE:  "OPCODE_GT", // reproduced labeling quirk, see print_test.go
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Opcode(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestQualifierString(t *testing.T) {
	cases := map[Qualifier]string{
		Global:    "GLOBAL",
		Auto:      "AUTO",
		Parameter: "PARAMETER",
	}
	for q, want := range cases {
		if got := q.String(); got != want {
			t.Errorf("Qualifier(%d).String() = %q, want %q", q, got, want)
		}
	}
}

func TestKindStringCoversClosedSet(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		if k.String() == "NODE_UNKNOWN" {
			t.Errorf("Kind %d has no String() case", k)
		}
	}
}
