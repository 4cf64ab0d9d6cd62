package symtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pontaoski/tacc/types"
)

func TestDeclareAndLookup(t *testing.T) {
	tab := New()

	if !tab.Declare("x", types.Int) {
		t.Fatal("first declaration of x rejected")
	}
	if !tab.Declare("y", types.Float) {
		t.Fatal("first declaration of y rejected")
	}
	if tab.Declare("x", types.Float) {
		t.Fatal("redeclaration of x accepted")
	}

	if got := tab.Lookup("x"); got != types.Int {
		t.Errorf("x: expected int, got %s", got)
	}
	if got := tab.Lookup("y"); got != types.Float {
		t.Errorf("y: expected float, got %s", got)
	}
	if got := tab.Lookup("nope"); got != types.Unknown {
		t.Errorf("nope: expected unknown, got %s", got)
	}
}

func TestVariablesSorted(t *testing.T) {
	tab := New()
	tab.Declare("b", types.Float)
	tab.Declare("a", types.Int)
	tab.Declare("c", types.Int)

	want := []Variable{
		{"a", types.Int},
		{"b", types.Float},
		{"c", types.Int},
	}
	if diff := cmp.Diff(want, tab.Variables()); diff != "" {
		t.Errorf("Variables() mismatch (-want +got):\n%s", diff)
	}
}
