package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/sum_gen.go ast"

import "github.com/pontaoski/tacc/types"

// Expressions. Each one carries the type it was given when it was built.

type BinaryOp struct {
	Op    types.Op
	Left  Expression
	Right Expression
	Typ   types.Type
	Pos   types.Span
}

type NumberLiteral struct {
	Typ   types.Type
	Int   int64
	Float float64
	Pos   types.Span
}

type Identifier struct {
	Name string
	Typ  types.Type
	Pos  types.Span
}

// TypeOf returns the type fixed for e at construction.
func TypeOf(e Expression) types.Type {
	switch expr := e.(type) {
	case *BinaryOp:
		return expr.Typ
	case *NumberLiteral:
		return expr.Typ
	case *Identifier:
		return expr.Typ
	}
	panic("unhandled")
}

// Boolean expressions only ever become jumps; they have no value type.

type Comparison struct {
	Op    types.Op
	Left  Expression
	Right Expression
}

type Or struct {
	Left  BooleanExpression
	Right BooleanExpression
}

type And struct {
	Left  BooleanExpression
	Right BooleanExpression
}

// Fand is true when neither operand is true. Its jump table is And's with
// the targets of every operand swapped.
type Fand struct {
	Left  BooleanExpression
	Right BooleanExpression
}

type Not struct {
	Operand BooleanExpression
}

// Statements.

type Read struct {
	ID  *Identifier
	Pos types.Span
}

type Write struct {
	Value Expression
	Pos   types.Span
}

type Assign struct {
	LHS *Identifier
	RHS Expression
	Pos types.Span
}

type If struct {
	Condition BooleanExpression
	Then      Statement
	// Else is nil when the source has no else branch.
	Else Statement
}

type While struct {
	Condition BooleanExpression
	Body      Statement
}

type For struct {
	Init      *Assign
	Condition BooleanExpression
	Step      *Assign
	Body      Statement
}

type Case struct {
	Value    int64
	Body     Statement
	HasBreak bool
	Pos      types.Span
}

type Switch struct {
	Subject Expression
	Cases   []*Case
	Default Statement
	Pos     types.Span
}

type Break struct {
	Pos types.Span
}

type Block struct {
	Stmts []Statement
}

// Declaration binds Name in the symbol table. Init is the assignment of the
// initializer, if there was one and the declaration succeeded.
type Declaration struct {
	Name string
	Typ  types.Type
	Init *Assign
	Pos  types.Span
}

type Program struct {
	Decls []*Declaration
	Body  Statement
}
