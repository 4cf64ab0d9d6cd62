package gen

import (
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/tac"
)

const ft = tac.FallThrough

// genBoolean emits jumping code for b: control reaches t when b is true and f
// when it is false. Either target may be tac.FallThrough, meaning control
// continues after the emitted code in that case.
func genBoolean(c *Context, b ast.BooleanExpression, t, f tac.Label) {
	if t == ft && f == ft {
		return
	}

	switch expr := b.(type) {
	case *ast.Comparison:
		left := genExpression(c, expr.Left)
		right := genExpression(c, expr.Right)
		jump := tac.CondJump{
			Op:       expr.Op,
			Left:     left,
			Right:    right,
			LeftTyp:  ast.TypeOf(expr.Left),
			RightTyp: ast.TypeOf(expr.Right),
		}

		switch {
		case t == ft:
			jump.Negate = true
			jump.Target = f
			c.emit(&jump)
		case f == ft:
			jump.Target = t
			c.emit(&jump)
		default:
			jump.Target = t
			c.emit(&jump)
			c.emit(&tac.Goto{Target: f})
		}
	case *ast.Or:
		switch {
		case t == ft:
			next := c.newLabel()
			genBoolean(c, expr.Left, next, ft)
			genBoolean(c, expr.Right, ft, f)
			c.emitLabel(next)
		case f == ft:
			genBoolean(c, expr.Left, t, ft)
			genBoolean(c, expr.Right, t, ft)
		default:
			genBoolean(c, expr.Left, t, ft)
			genBoolean(c, expr.Right, t, f)
		}
	case *ast.And:
		switch {
		case t == ft:
			genBoolean(c, expr.Left, ft, f)
			genBoolean(c, expr.Right, ft, f)
		case f == ft:
			next := c.newLabel()
			genBoolean(c, expr.Left, ft, next)
			genBoolean(c, expr.Right, t, ft)
			c.emitLabel(next)
		default:
			genBoolean(c, expr.Left, ft, f)
			genBoolean(c, expr.Right, t, f)
		}
	case *ast.Fand:
		// And with the targets of each operand swapped.
		switch {
		case t == ft:
			genBoolean(c, expr.Left, f, ft)
			genBoolean(c, expr.Right, f, ft)
		case f == ft:
			next := c.newLabel()
			genBoolean(c, expr.Left, next, ft)
			genBoolean(c, expr.Right, ft, t)
			c.emitLabel(next)
		default:
			genBoolean(c, expr.Left, f, ft)
			genBoolean(c, expr.Right, f, t)
		}
	case *ast.Not:
		genBoolean(c, expr.Operand, f, t)
	default:
		panic("unhandled")
	}
}
