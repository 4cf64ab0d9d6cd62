package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/diag"
	"github.com/pontaoski/tacc/errors"
	"github.com/pontaoski/tacc/lexer"
	"github.com/pontaoski/tacc/symtab"
	"github.com/pontaoski/tacc/types"
	"github.com/ztrue/tracerr"
)

var ignorePos = cmpopts.IgnoreTypes(types.Span{})

func parse(t *testing.T, src string) (*ast.Program, *diag.Reporter, error) {
	t.Helper()
	r := diag.NewReporter(nil)
	b := ast.NewBuilder(symtab.New(), r)
	p := NewParser(lexer.NewLexer(strings.NewReader(src), "test.t"), b)
	prog, err := p.Parse()
	return prog, r, err
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, r, err := parse(t, src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Diagnostics())
	}
	return prog
}

func id(name string, t types.Type) *ast.Identifier {
	return &ast.Identifier{Name: name, Typ: t}
}

func num(v int64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Typ: types.Int, Int: v}
}

func TestDeclarations(t *testing.T) {
	prog := mustParse(t, "int a; float b; auto c = 2.5; int d = 3;")

	want := []*ast.Declaration{
		{Name: "a", Typ: types.Int},
		{Name: "b", Typ: types.Float},
		{Name: "c", Typ: types.Float, Init: &ast.Assign{
			LHS: id("c", types.Float),
			RHS: &ast.NumberLiteral{Typ: types.Float, Float: 2.5},
		}},
		{Name: "d", Typ: types.Int, Init: &ast.Assign{LHS: id("d", types.Int), RHS: num(3)}},
	}
	if diff := cmp.Diff(want, prog.Decls, ignorePos); diff != "" {
		t.Errorf("declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestInitializerSeesEarlierDeclarationsOnly(t *testing.T) {
	_, r, err := parse(t, "auto x = x + 1;")
	if err != nil {
		t.Fatal(err)
	}
	if r.Count() != 1 || r.Diagnostics()[0].Msg != "variable x is undefined" {
		t.Errorf("unexpected diagnostics %v", r.Diagnostics())
	}
}

func TestRedeclarationDropsInitializer(t *testing.T) {
	prog, r, err := parse(t, "int a; float a = 2.0;")
	if err != nil {
		t.Fatal(err)
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", r.Diagnostics())
	}
	if prog.Decls[1].Init != nil {
		t.Error("redeclared variable kept its initializer")
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	prog := mustParse(t, "int a; a = 1 - 2 - 3 * (4 + a);")

	want := &ast.Assign{
		LHS: id("a", types.Int),
		RHS: &ast.BinaryOp{
			Op: types.Minus,
			Left: &ast.BinaryOp{
				Op: types.Minus, Left: num(1), Right: num(2), Typ: types.Int,
			},
			Right: &ast.BinaryOp{
				Op:   types.Mul,
				Left: num(3),
				Right: &ast.BinaryOp{
					Op: types.Plus, Left: num(4), Right: id("a", types.Int), Typ: types.Int,
				},
				Typ: types.Int,
			},
			Typ: types.Int,
		},
	}
	if diff := cmp.Diff(want, prog.Body, ignorePos); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestBooleanPrecedence(t *testing.T) {
	prog := mustParse(t, "int a; if (a < 1 or a < 2 and not (a > 3)) a = 1;")

	cmpA := func(op types.Op, v int64) *ast.Comparison {
		return &ast.Comparison{Op: op, Left: id("a", types.Int), Right: num(v)}
	}
	want := &ast.Or{
		Left: cmpA(types.LT, 1),
		Right: &ast.And{
			Left:  cmpA(types.LT, 2),
			Right: &ast.Not{Operand: cmpA(types.GT, 3)},
		},
	}
	if diff := cmp.Diff(want, prog.Body.(*ast.If).Condition, ignorePos); diff != "" {
		t.Errorf("condition mismatch (-want +got):\n%s", diff)
	}
}

func TestParenthesizedGroups(t *testing.T) {
	prog := mustParse(t, "int a; while ((a + 1) <= 2 fand ((a) == 0)) a = a;")

	want := &ast.Fand{
		Left: &ast.Comparison{
			Op:    types.LE,
			Left:  &ast.BinaryOp{Op: types.Plus, Left: id("a", types.Int), Right: num(1), Typ: types.Int},
			Right: num(2),
		},
		Right: &ast.Comparison{Op: types.EQ, Left: id("a", types.Int), Right: num(0)},
	}
	if diff := cmp.Diff(want, prog.Body.(*ast.While).Condition, ignorePos); diff != "" {
		t.Errorf("condition mismatch (-want +got):\n%s", diff)
	}
}

func TestStatements(t *testing.T) {
	prog := mustParse(t, `int i; float f;
{
	read(i);
	write i * 2;
	for (i = 0; i < 10; i = i + 1;) write f;
	if (i > 0) break; else { }
}`)

	inner, ok := prog.Body.(*ast.Block)
	if !ok {
		t.Fatalf("expected the braces to make the body, got %T", prog.Body)
	}
	if len(inner.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(inner.Stmts))
	}

	if rd := inner.Stmts[0].(*ast.Read); rd.ID.Name != "i" {
		t.Errorf("read into %s", rd.ID.Name)
	}
	if wr := inner.Stmts[1].(*ast.Write); ast.TypeOf(wr.Value) != types.Int {
		t.Errorf("write of %s", ast.TypeOf(wr.Value))
	}
	loop := inner.Stmts[2].(*ast.For)
	if loop.Init.LHS.Name != "i" || loop.Step.LHS.Name != "i" {
		t.Errorf("for loop assigns %s and %s", loop.Init.LHS.Name, loop.Step.LHS.Name)
	}
	branch := inner.Stmts[3].(*ast.If)
	if _, ok := branch.Then.(*ast.Break); !ok {
		t.Errorf("then branch is %T", branch.Then)
	}
	if branch.Else == nil {
		t.Error("else branch lost")
	}
}

func TestIfWithoutElse(t *testing.T) {
	prog := mustParse(t, "int a; if (a == 1) a = 2;")
	if prog.Body.(*ast.If).Else != nil {
		t.Error("expected no else branch")
	}
}

func TestSwitch(t *testing.T) {
	prog := mustParse(t, `int a;
switch (a) {
case 1: a = 2; break;
case 2: a = 3;
default: a = 4;
}`)

	sw := prog.Body.(*ast.Switch)
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
	got := []struct {
		Value    int64
		HasBreak bool
	}{{sw.Cases[0].Value, sw.Cases[0].HasBreak}, {sw.Cases[1].Value, sw.Cases[1].HasBreak}}
	want := []struct {
		Value    int64
		HasBreak bool
	}{{1, true}, {2, false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cases mismatch (-want +got):\n%s", diff)
	}
	if sw.Default == nil {
		t.Error("default lost")
	}
}

func TestSyntaxErrorStopsParse(t *testing.T) {
	prog, r, err := parse(t, "int a;\na = 1")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if prog != nil {
		t.Error("expected no program after a syntax error")
	}

	var want = errors.ExpectedKindGotKind{}
	got, ok := tracerr.Unwrap(err).(errors.ExpectedKindGotKind)
	if !ok {
		t.Fatalf("unexpected error type %T", tracerr.Unwrap(err))
	}
	want.Expected, want.Got = types.SEMICOLON, types.EOF
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}

	if r.Count() != 1 {
		t.Fatalf("expected the syntax error to be counted once, got %d", r.Count())
	}
	if msg := r.Diagnostics()[0].Msg; msg != "line 2: syntax error, unexpected EOF, expecting ';'" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestIllegalCharacterIsSyntaxError(t *testing.T) {
	_, r, err := parse(t, "int a; a = 1 # 2;")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := tracerr.Unwrap(err).(errors.IllegalCharacter); !ok {
		t.Errorf("unexpected error %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 diagnostic, got %d", r.Count())
	}
}
