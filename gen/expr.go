package gen

import (
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/errors"
	"github.com/pontaoski/tacc/tac"
	"github.com/pontaoski/tacc/types"
)

// genExpression emits the code computing e and returns the temporary that
// holds the result. Nothing is cached: a node evaluated twice is emitted twice.
func genExpression(c *Context, e ast.Expression) tac.Temp {
	switch expr := e.(type) {
	case *ast.NumberLiteral:
		dst := c.newTemp()
		c.emit(&tac.Const{Dst: dst, Typ: expr.Typ, Int: expr.Int, Float: expr.Float})
		return dst
	case *ast.Identifier:
		dst := c.newTemp()
		c.emit(&tac.Load{Dst: dst, Name: expr.Name, Typ: expr.Typ})
		return dst
	case *ast.BinaryOp:
		left := genExpression(c, expr.Left)
		right := genExpression(c, expr.Right)

		lt, rt := ast.TypeOf(expr.Left), ast.TypeOf(expr.Right)
		if expr.Op == types.Mod && (lt == types.Float || rt == types.Float) {
			panic(errors.Fatal{
				Msg:      "operator % applied to an operand of type float",
				Location: expr.Pos,
			})
		}

		switch {
		case lt == types.Int && rt == types.Float:
			left = widen(c, left)
		case lt == types.Float && rt == types.Int:
			right = widen(c, right)
		}

		dst := c.newTemp()
		c.emit(&tac.Arith{Dst: dst, Op: expr.Op, Left: left, Right: right, Typ: expr.Typ})
		return dst
	default:
		panic("unhandled")
	}
}

func widen(c *Context, src tac.Temp) tac.Temp {
	dst := c.newTemp()
	c.emit(&tac.Cast{Dst: dst, Src: src, To: types.Float})
	return dst
}
