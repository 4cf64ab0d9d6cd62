package ast

import (
	"github.com/pontaoski/tacc/diag"
	"github.com/pontaoski/tacc/types"
)

type SymbolTable interface {
	Declare(name string, t types.Type) bool
	Lookup(name string) types.Type
}

// Builder constructs nodes the way the parser reduces them, checking types as
// it goes. Type errors are reported to Diag and never stop construction.
type Builder struct {
	Symbols SymbolTable
	Diag    *diag.Reporter
}

func NewBuilder(symbols SymbolTable, r *diag.Reporter) *Builder {
	return &Builder{Symbols: symbols, Diag: r}
}

// Declare reports a redeclaration and returns false for it.
func (b *Builder) Declare(name string, t types.Type, pos types.Span) bool {
	if !b.Symbols.Declare(name, t) {
		b.Diag.Errorf(pos, "redeclaration of %s", name)
		return false
	}
	return true
}

func (b *Builder) NewIdentifier(name string, pos types.Span) *Identifier {
	t := b.Symbols.Lookup(name)
	if t == types.Unknown {
		b.Diag.Errorf(pos, "variable %s is undefined", name)
		t = types.Int
	}
	return &Identifier{Name: name, Typ: t, Pos: pos}
}

func (b *Builder) NewInt(v int64, pos types.Span) *NumberLiteral {
	return &NumberLiteral{Typ: types.Int, Int: v, Pos: pos}
}

func (b *Builder) NewFloat(v float64, pos types.Span) *NumberLiteral {
	return &NumberLiteral{Typ: types.Float, Float: v, Pos: pos}
}

// NewBinaryOp widens to Float when the operand types differ.
func (b *Builder) NewBinaryOp(op types.Op, left, right Expression, pos types.Span) *BinaryOp {
	lt, rt := TypeOf(left), TypeOf(right)
	t := lt
	if lt != rt {
		b.Diag.Errorf(pos, "operator applied to operands having different types")
		t = types.Float
	}
	return &BinaryOp{Op: op, Left: left, Right: right, Typ: t, Pos: pos}
}

// NewAssign records a type mismatch but keeps the assignment; the generator
// stores through a cast.
func (b *Builder) NewAssign(lhs *Identifier, rhs Expression, pos types.Span) *Assign {
	if lhs.Typ != types.Unknown && lhs.Typ != TypeOf(rhs) {
		b.Diag.Errorf(pos, "left/right type mismatch")
	}
	return &Assign{LHS: lhs, RHS: rhs, Pos: pos}
}

// NewSwitch reports repeated case values. Dispatch still works with them:
// the first matching row wins.
func (b *Builder) NewSwitch(subject Expression, cases []*Case, def Statement, pos types.Span) *Switch {
	seen := make(map[int64]bool, len(cases))
	for _, c := range cases {
		if seen[c.Value] {
			b.Diag.Errorf(c.Pos, "duplicate case value %d", c.Value)
		}
		seen[c.Value] = true
	}
	return &Switch{Subject: subject, Cases: cases, Default: def, Pos: pos}
}
