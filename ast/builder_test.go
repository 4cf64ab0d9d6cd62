package ast

import (
	"testing"

	"github.com/pontaoski/tacc/diag"
	"github.com/pontaoski/tacc/symtab"
	"github.com/pontaoski/tacc/types"
)

func line(n int) types.Span {
	return types.SingleCharSpan(types.Position{Line: n})
}

func newBuilder() *Builder {
	tab := symtab.New()
	tab.Declare("i", types.Int)
	tab.Declare("f", types.Float)
	return NewBuilder(tab, diag.NewReporter(nil))
}

func TestUndeclaredIdentifierDefaultsToInt(t *testing.T) {
	b := newBuilder()

	id := b.NewIdentifier("ghost", line(4))
	if id.Typ != types.Int {
		t.Errorf("expected int, got %s", id.Typ)
	}
	if b.Diag.Count() != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d", b.Diag.Count())
	}
	if got := b.Diag.Diagnostics()[0].String(); got != "line 4: variable ghost is undefined" {
		t.Errorf("unexpected diagnostic %q", got)
	}
}

func TestDeclaredIdentifierTakesDeclaredType(t *testing.T) {
	b := newBuilder()
	if got := b.NewIdentifier("f", line(1)).Typ; got != types.Float {
		t.Errorf("expected float, got %s", got)
	}
	if b.Diag.Count() != 0 {
		t.Errorf("expected no diagnostics, got %d", b.Diag.Count())
	}
}

func TestBinaryOpType(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
		want        types.Type
		diags       int
	}{
		{"int int", "i", "i", types.Int, 0},
		{"float float", "f", "f", types.Float, 0},
		{"int float", "i", "f", types.Float, 1},
		{"float int", "f", "i", types.Float, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newBuilder()
			op := b.NewBinaryOp(types.Plus, b.NewIdentifier(c.left, line(1)), b.NewIdentifier(c.right, line(1)), line(1))
			if op.Typ != c.want {
				t.Errorf("expected %s, got %s", c.want, op.Typ)
			}
			if TypeOf(op) != c.want {
				t.Errorf("TypeOf disagrees with field: %s", TypeOf(op))
			}
			if b.Diag.Count() != c.diags {
				t.Errorf("expected %d diagnostics, got %d", c.diags, b.Diag.Count())
			}
		})
	}
}

func TestLiteralTypes(t *testing.T) {
	b := newBuilder()
	if TypeOf(b.NewInt(3, line(1))) != types.Int {
		t.Error("int literal is not int")
	}
	if TypeOf(b.NewFloat(3.5, line(1))) != types.Float {
		t.Error("float literal is not float")
	}
}

func TestAssignMismatchIsRecordedNotRejected(t *testing.T) {
	b := newBuilder()
	a := b.NewAssign(b.NewIdentifier("i", line(2)), b.NewFloat(1.5, line(2)), line(2))
	if a == nil || a.RHS == nil {
		t.Fatal("assignment was not built")
	}
	if b.Diag.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", b.Diag.Count())
	}
	if got := b.Diag.Diagnostics()[0].Msg; got != "left/right type mismatch" {
		t.Errorf("unexpected message %q", got)
	}

	b.NewAssign(b.NewIdentifier("f", line(3)), b.NewIdentifier("f", line(3)), line(3))
	if b.Diag.Count() != 1 {
		t.Errorf("matching assignment added a diagnostic")
	}
}

func TestRedeclaration(t *testing.T) {
	b := newBuilder()
	if b.Declare("i", types.Float, line(5)) {
		t.Fatal("redeclaration accepted")
	}
	if b.Diag.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", b.Diag.Count())
	}
	if b.Symbols.Lookup("i") != types.Int {
		t.Error("redeclaration changed the type of i")
	}
	if !b.Declare("k", types.Int, line(6)) {
		t.Error("fresh declaration rejected")
	}
}

func TestDuplicateCaseValue(t *testing.T) {
	b := newBuilder()
	cases := []*Case{
		{Value: 1, Body: &Block{}, Pos: line(2)},
		{Value: 2, Body: &Block{}, Pos: line(3)},
		{Value: 1, Body: &Block{}, Pos: line(4)},
	}
	sw := b.NewSwitch(b.NewIdentifier("i", line(1)), cases, &Block{}, line(1))
	if len(sw.Cases) != 3 {
		t.Fatalf("expected all 3 cases kept, got %d", len(sw.Cases))
	}
	if b.Diag.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", b.Diag.Count())
	}
	if got := b.Diag.Diagnostics()[0].String(); got != "line 4: duplicate case value 1" {
		t.Errorf("unexpected diagnostic %q", got)
	}
}
