// Package llvm lowers three-address code to an LLVM module that can be handed
// to clang.
package llvm

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/coreos/pkg/capnslog"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pontaoski/tacc/symtab"
	"github.com/pontaoski/tacc/tac"
	tactypes "github.com/pontaoski/tacc/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tacc", "llvm")

type lowerError struct {
	msg string
}

func (l lowerError) Error() string {
	return l.msg
}

func newLowerError(msg string, fmts ...interface{}) lowerError {
	return lowerError{fmt.Sprintf(msg, fmts...)}
}

type ctx struct {
	m        *ir.Module
	fn       *ir.Func
	cur      *ir.Block
	builtins map[string]value.Value
	formats  map[string]*ir.Global
	vars     map[string]*ir.Global
	temps    map[tac.Temp]*ir.InstAlloca
	tempType map[tac.Temp]tactypes.Type
	blocks   map[tac.Label]*ir.Block
	fresh    int
}

var intPreds = map[tactypes.Op]enum.IPred{
	tactypes.LT: enum.IPredSLT,
	tactypes.GT: enum.IPredSGT,
	tactypes.LE: enum.IPredSLE,
	tactypes.GE: enum.IPredSGE,
	tactypes.EQ: enum.IPredEQ,
	tactypes.NE: enum.IPredNE,
}

var floatPreds = map[tactypes.Op]enum.FPred{
	tactypes.LT: enum.FPredOLT,
	tactypes.GT: enum.FPredOGT,
	tactypes.LE: enum.FPredOLE,
	tactypes.GE: enum.FPredOGE,
	tactypes.EQ: enum.FPredOEQ,
	tactypes.NE: enum.FPredONE,
}

// Lower turns a complete instruction list into a module with a single main
// function. Every variable becomes a zero initialized global and every
// temporary a stack slot of main.
func Lower(code []tac.Instr, vars []symtab.Variable) (m *ir.Module, err error) {
	defer func() {
		if v := recover(); v != nil {
			if lerr, ok := v.(lowerError); ok {
				m = nil
				err = lerr
			} else {
				panic(v)
			}
		}
	}()

	c := &ctx{
		m:        ir.NewModule(),
		formats:  map[string]*ir.Global{},
		vars:     map[string]*ir.Global{},
		temps:    map[tac.Temp]*ir.InstAlloca{},
		tempType: map[tac.Temp]tactypes.Type{},
		blocks:   map[tac.Label]*ir.Block{},
	}
	c.builtins = addBuiltins(c.m)
	registerSymbols(vars, c.m)

	for _, v := range vars {
		var init constant.Constant
		if v.Type == tactypes.Float {
			init = constant.NewFloat(Float, 0)
		} else {
			init = constant.NewInt(Int, 0)
		}
		c.vars[v.Name] = c.m.NewGlobalDef(globalName(v.Name), init)
	}

	c.fn = c.m.NewFunc("main", types.I32)
	entry := c.fn.NewBlock("entry")
	c.prescan(code, entry)
	c.cur = entry

	for _, i := range code {
		c.lower(i)
	}
	if c.cur.Term == nil {
		c.cur.NewRet(constant.NewInt(types.I32, 0))
	}

	plog.Debugf("lowered %d instructions into %d blocks", len(code), len(c.fn.Blocks))
	return c.m, nil
}

// prescan gives every temporary its slot in the entry block and every placed
// label its block, so that forward jumps have somewhere to go.
func (c *ctx) prescan(code []tac.Instr, entry *ir.Block) {
	for _, i := range code {
		if dst, t, ok := tac.Dest(i); ok {
			c.temps[dst] = entry.NewAlloca(typeOf(t))
			c.tempType[dst] = t
		}
		if mark, ok := i.(*tac.Mark); ok {
			c.blocks[mark.Label] = c.fn.NewBlock(mark.Label.String())
		}
	}
	for _, i := range code {
		if target, ok := jumpTarget(i); ok {
			if _, placed := c.blocks[target]; !placed {
				panic(newLowerError("jump to %s, which is never placed", target))
			}
		}
	}
}

func jumpTarget(i tac.Instr) (tac.Label, bool) {
	switch in := i.(type) {
	case *tac.Goto:
		return in.Target, true
	case *tac.CondJump:
		return in.Target, true
	case *tac.CaseRow:
		return in.Target, true
	}
	return 0, false
}

// block returns the block code is currently appended to. Code following a
// terminator without a label in between is unreachable, and lands in a fresh
// block of its own.
func (c *ctx) block() *ir.Block {
	if c.cur.Term != nil {
		c.cur = c.newBlock("dead")
	}
	return c.cur
}

func (c *ctx) newBlock(prefix string) *ir.Block {
	c.fresh++
	return c.fn.NewBlock(prefix + "." + strconv.Itoa(c.fresh))
}

// globalName keeps variables apart from main and the C library.
func globalName(variable string) string {
	return "var." + variable
}

func (c *ctx) variable(name string) *ir.Global {
	g, ok := c.vars[name]
	if !ok {
		panic(newLowerError("variable %s is not declared", name))
	}
	return g
}

func (c *ctx) load(t tac.Temp) value.Value {
	slot, ok := c.temps[t]
	if !ok {
		panic(newLowerError("%s is used but never defined", t))
	}
	return c.block().NewLoad(slot.ElemType, slot)
}

func (c *ctx) store(t tac.Temp, v value.Value) {
	c.block().NewStore(v, c.temps[t])
}

// loadAs loads t converted to the wanted type.
func (c *ctx) loadAs(t tac.Temp, want tactypes.Type) value.Value {
	v := c.load(t)
	return c.convert(v, c.tempType[t], want)
}

func (c *ctx) convert(v value.Value, from, to tactypes.Type) value.Value {
	switch {
	case from == to:
		return v
	case to == tactypes.Float:
		return c.block().NewSIToFP(v, Float)
	default:
		return c.block().NewFPToSI(v, Int)
	}
}

// format returns a pointer to the NUL terminated string s, sharing one global
// per distinct string.
func (c *ctx) format(s string) value.Value {
	g, ok := c.formats[s]
	if !ok {
		g = c.m.NewGlobalDef(".fmt."+strconv.FormatUint(xxhash.Sum64String(s), 16), constant.NewCharArrayFromString(s+"\x00"))
		g.Immutable = true
		c.formats[s] = g
	}

	zero := constant.NewInt(types.I32, 0)
	return c.block().NewGetElementPtr(g.Init.Type(), g, zero, zero)
}

func (c *ctx) lower(i tac.Instr) {
	switch in := i.(type) {
	case *tac.Mark:
		next := c.blocks[in.Label]
		if c.cur.Term == nil {
			c.cur.NewBr(next)
		}
		c.cur = next
	case *tac.Const:
		if in.Typ == tactypes.Float {
			c.store(in.Dst, constant.NewFloat(Float, in.Float))
		} else {
			c.store(in.Dst, constant.NewInt(Int, in.Int))
		}
	case *tac.Load:
		g := c.variable(in.Name)
		c.store(in.Dst, c.block().NewLoad(typeOf(in.Typ), g))
	case *tac.Arith:
		left, right := c.loadAs(in.Left, in.Typ), c.loadAs(in.Right, in.Typ)
		c.store(in.Dst, c.arith(in.Op, in.Typ, left, right))
	case *tac.Cast:
		c.store(in.Dst, c.loadAs(in.Src, in.To))
	case *tac.Store:
		v := c.convert(c.load(in.Src), in.From, in.To)
		c.block().NewStore(v, c.variable(in.Name))
	case *tac.CondJump:
		cmp := c.compare(in)
		next := c.newBlock("next")
		if in.Negate {
			c.block().NewCondBr(cmp, next, c.blocks[in.Target])
		} else {
			c.block().NewCondBr(cmp, c.blocks[in.Target], next)
		}
		c.cur = next
	case *tac.Goto:
		c.block().NewBr(c.blocks[in.Target])
	case *tac.CaseRow:
		if in.Self {
			c.block().NewBr(c.blocks[in.Target])
			return
		}
		subject := c.load(in.Subject)
		eq := c.block().NewICmp(enum.IPredEQ, subject, constant.NewInt(Int, in.Value))
		next := c.newBlock("case")
		c.block().NewCondBr(eq, c.blocks[in.Target], next)
		c.cur = next
	case *tac.Read:
		f := "%d"
		if in.Typ == tactypes.Float {
			f = "%lf"
		}
		c.block().NewCall(c.builtins["scanf"], c.format(f), c.variable(in.Name))
	case *tac.Write:
		f := "%d\n"
		if in.Typ == tactypes.Float {
			f = "%.2f\n"
		}
		c.block().NewCall(c.builtins["printf"], c.format(f), c.load(in.Src))
	case *tac.Halt:
		c.block().NewRet(constant.NewInt(types.I32, 0))
	default:
		panic(newLowerError("cannot lower %s", i))
	}
}

func (c *ctx) arith(op tactypes.Op, t tactypes.Type, x, y value.Value) value.Value {
	b := c.block()
	if t == tactypes.Float {
		switch op {
		case tactypes.Plus:
			return b.NewFAdd(x, y)
		case tactypes.Minus:
			return b.NewFSub(x, y)
		case tactypes.Mul:
			return b.NewFMul(x, y)
		case tactypes.Div:
			return b.NewFDiv(x, y)
		}
		panic(newLowerError("operator %s has no float form", op))
	}

	switch op {
	case tactypes.Plus:
		return b.NewAdd(x, y)
	case tactypes.Minus:
		return b.NewSub(x, y)
	case tactypes.Mul:
		return b.NewMul(x, y)
	case tactypes.Div:
		return b.NewSDiv(x, y)
	case tactypes.Mod:
		return b.NewSRem(x, y)
	}
	panic(newLowerError("operator %s is not arithmetic", op))
}

// compare widens an int operand when the other one is a float.
func (c *ctx) compare(in *tac.CondJump) value.Value {
	t := in.LeftTyp
	if in.RightTyp == tactypes.Float {
		t = tactypes.Float
	}
	left, right := c.loadAs(in.Left, t), c.loadAs(in.Right, t)

	if t == tactypes.Float {
		return c.block().NewFCmp(floatPreds[in.Op], left, right)
	}
	return c.block().NewICmp(intPreds[in.Op], left, right)
}
