package types

import "fmt"

// Type is the value type of an expression or variable.
type Type int

const (
	Int Type = iota
	Float
	// Unknown is what the symbol table answers for undeclared names. The AST
	// replaces it with Int as soon as the identifier is built.
	Unknown
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "unknown"
}

// MarshalText spells the type by name in symbol dumps.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	switch string(b) {
	case "int":
		*t = Int
	case "float":
		*t = Float
	case "unknown":
		*t = Unknown
	default:
		return fmt.Errorf("unknown type %q", string(b))
	}
	return nil
}

type Op int

const (
	Plus Op = iota
	Minus
	Mul
	Div
	Mod
	LT
	GT
	LE
	GE
	EQ
	NE
)

var opNames = map[Op]struct{ i, f string }{
	Plus:  {"+", "@+"},
	Minus: {"-", "@-"},
	Mul:   {"*", "@*"},
	Div:   {"/", "@/"},
	Mod:   {"%", "%"},
}

var relNames = map[Op]string{
	LT: "<",
	GT: ">",
	LE: "<=",
	GE: ">=",
	EQ: "==",
	NE: "!=",
}

// IsRelational reports whether o compares two values instead of computing one.
func (o Op) IsRelational() bool {
	_, ok := relNames[o]
	return ok
}

// Symbol is the spelling of an arithmetic operator in generated code for
// operands of type t, or of a relational operator regardless of t.
func (o Op) Symbol(t Type) string {
	if rel, ok := relNames[o]; ok {
		return rel
	}
	names, ok := opNames[o]
	if !ok {
		panic(fmt.Sprintf("unhandled operator %d", int(o)))
	}
	if t == Float {
		return names.f
	}
	return names.i
}

func (o Op) String() string {
	return o.Symbol(Int)
}

// ParseOp maps source spelling to an operator.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "+":
		return Plus, true
	case "-":
		return Minus, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	case "%":
		return Mod, true
	}
	for op, name := range relNames {
		if name == s {
			return op, true
		}
	}
	return 0, false
}
