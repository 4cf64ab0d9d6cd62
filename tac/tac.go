// Package tac is the three-address code the generator emits: one value per
// instruction, rendered one instruction per line.
package tac

import (
	"fmt"
	"strings"

	"github.com/pontaoski/tacc/types"
)

type Temp int

func (t Temp) String() string {
	return fmt.Sprintf("_t%d", t)
}

type Label int

// FallThrough as a jump target means "continue with the next instruction".
const FallThrough Label = -1

func (l Label) String() string {
	if l == FallThrough {
		return "<fall through>"
	}
	return fmt.Sprintf("label%d", l)
}

type Instr interface {
	is_Instr()
	String() string
}

// Const loads a literal: `_t1 = 3` or `_t1 = 2.50`.
type Const struct {
	Dst   Temp
	Typ   types.Type
	Int   int64
	Float float64
}

// Load copies a variable: `_t1 = x`.
type Load struct {
	Dst  Temp
	Name string
	Typ  types.Type
}

// Arith is `_t3 = _t1 + _t2`, with the operator spelled for Typ.
type Arith struct {
	Dst         Temp
	Op          types.Op
	Left, Right Temp
	Typ         types.Type
}

// Cast converts Src to To: `_t2 = static_cast<float> _t1`.
type Cast struct {
	Dst Temp
	Src Temp
	To  types.Type
}

// Store writes Src into a variable, through a cast when From and To differ.
type Store struct {
	Name     string
	Src      Temp
	From, To types.Type
}

// CondJump is `if a < b goto L`, or `ifFalse a < b goto L` when Negate is set.
// The operand types are kept for consumers that need typed comparisons.
type CondJump struct {
	Negate            bool
	Op                types.Op
	Left, Right       Temp
	LeftTyp, RightTyp types.Type
	Target            Label
}

type Goto struct {
	Target Label
}

// Mark places a label.
type Mark struct {
	Label Label
}

type Read struct {
	Name string
	Typ  types.Type
}

type Write struct {
	Src Temp
	Typ types.Type
}

// CaseRow is one row of a switch dispatch table. With Self set it compares the
// subject with itself, which always matches and sends control to the default.
type CaseRow struct {
	Subject Temp
	Value   int64
	Self    bool
	Target  Label
}

type Halt struct{}

func (*Const) is_Instr()    {}
func (*Load) is_Instr()     {}
func (*Arith) is_Instr()    {}
func (*Cast) is_Instr()     {}
func (*Store) is_Instr()    {}
func (*CondJump) is_Instr() {}
func (*Goto) is_Instr()     {}
func (*Mark) is_Instr()     {}
func (*Read) is_Instr()     {}
func (*Write) is_Instr()    {}
func (*CaseRow) is_Instr()  {}
func (*Halt) is_Instr()     {}

func (i *Const) String() string {
	if i.Typ == types.Float {
		return fmt.Sprintf("%s = %.2f", i.Dst, i.Float)
	}
	return fmt.Sprintf("%s = %d", i.Dst, i.Int)
}

func (i *Load) String() string {
	return fmt.Sprintf("%s = %s", i.Dst, i.Name)
}

func (i *Arith) String() string {
	return fmt.Sprintf("%s = %s %s %s", i.Dst, i.Left, i.Op.Symbol(i.Typ), i.Right)
}

func (i *Cast) String() string {
	return fmt.Sprintf("%s = static_cast<%s> %s", i.Dst, i.To, i.Src)
}

func (i *Store) String() string {
	switch {
	case i.From == i.To:
		return fmt.Sprintf("%s = %s", i.Name, i.Src)
	case i.From == types.Float && i.To == types.Int:
		return fmt.Sprintf("%s = static_cast<%s> %s // warning: data may be lost", i.Name, i.To, i.Src)
	default:
		return fmt.Sprintf("%s = static_cast<%s> %s", i.Name, i.To, i.Src)
	}
}

func (i *CondJump) String() string {
	kw := "if"
	if i.Negate {
		kw = "ifFalse"
	}
	return fmt.Sprintf("%s %s %s %s goto %s", kw, i.Left, i.Op.Symbol(types.Int), i.Right, i.Target)
}

func (i *Goto) String() string {
	return fmt.Sprintf("goto %s", i.Target)
}

func (i *Mark) String() string {
	return fmt.Sprintf("%s:", i.Label)
}

func (i *Read) String() string {
	return fmt.Sprintf("%cread %s", prefix(i.Typ), i.Name)
}

func (i *Write) String() string {
	return fmt.Sprintf("%cwrite %s", prefix(i.Typ), i.Src)
}

func (i *CaseRow) String() string {
	if i.Self {
		return fmt.Sprintf("case %s %s goto %s", i.Subject, i.Subject, i.Target)
	}
	return fmt.Sprintf("case %s %d goto %s", i.Subject, i.Value, i.Target)
}

func (i *Halt) String() string {
	return "halt"
}

func prefix(t types.Type) byte {
	if t == types.Float {
		return 'f'
	}
	return 'i'
}

// Line renders i as it appears in the output: labels flush left, everything
// else indented by four spaces.
func Line(i Instr) string {
	if _, ok := i.(*Mark); ok {
		return i.String()
	}
	return "    " + i.String()
}

// Format renders a whole instruction list.
func Format(code []Instr) string {
	var sb strings.Builder
	for _, i := range code {
		sb.WriteString(Line(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dest returns the temporary i defines and its type, if it defines one.
func Dest(i Instr) (Temp, types.Type, bool) {
	switch in := i.(type) {
	case *Const:
		return in.Dst, in.Typ, true
	case *Load:
		return in.Dst, in.Typ, true
	case *Arith:
		return in.Dst, in.Typ, true
	case *Cast:
		return in.Dst, in.To, true
	}
	return 0, 0, false
}
