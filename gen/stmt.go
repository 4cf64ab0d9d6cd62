package gen

import (
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/tac"
	"github.com/pontaoski/tacc/types"
)

func genStatement(c *Context, s ast.Statement) {
	switch stmt := s.(type) {
	case *ast.Read:
		c.emit(&tac.Read{Name: stmt.ID.Name, Typ: stmt.ID.Typ})
	case *ast.Write:
		src := genExpression(c, stmt.Value)
		c.emit(&tac.Write{Src: src, Typ: ast.TypeOf(stmt.Value)})
	case *ast.Assign:
		genAssign(c, stmt)
	case *ast.If:
		elseLabel := c.newLabel()
		exitLabel := c.newLabel()

		genBoolean(c, stmt.Condition, ft, elseLabel)
		genStatement(c, stmt.Then)
		c.emit(&tac.Goto{Target: exitLabel})
		c.emitLabel(elseLabel)
		if stmt.Else != nil {
			genStatement(c, stmt.Else)
		}
		c.emitLabel(exitLabel)
	case *ast.While:
		genLoop(c, stmt.Condition, stmt.Body, nil)
	case *ast.For:
		genAssign(c, stmt.Init)
		genLoop(c, stmt.Condition, stmt.Body, stmt.Step)
	case *ast.Switch:
		genSwitch(c, stmt)
	case *ast.Break:
		exit, ok := c.exit()
		if !ok {
			c.diag.Errorf(stmt.Pos, "break not in loop or switch")
			return
		}
		c.emit(&tac.Goto{Target: exit})
	case *ast.Block:
		for _, inner := range stmt.Stmts {
			genStatement(c, inner)
		}
	default:
		panic("unhandled")
	}
}

func genAssign(c *Context, a *ast.Assign) {
	src := genExpression(c, a.RHS)
	c.emit(&tac.Store{Name: a.LHS.Name, Src: src, From: ast.TypeOf(a.RHS), To: a.LHS.Typ})
}

// genLoop lays out while and for loops. step, when present, runs at the end
// of every iteration.
func genLoop(c *Context, cond ast.BooleanExpression, body ast.Statement, step *ast.Assign) {
	condLabel := c.newLabel()
	exitLabel := c.newLabel()

	c.pushExit(exitLabel)
	defer c.popExit()

	plog.Debugf("loop while %s, exit %s", cond, exitLabel)

	c.emitLabel(condLabel)
	genBoolean(c, cond, ft, exitLabel)
	genStatement(c, body)
	if step != nil {
		genAssign(c, step)
	}
	c.emit(&tac.Goto{Target: condLabel})
	c.emitLabel(exitLabel)
}

// genSwitch emits every case body once, in source order, followed by the
// dispatch table that jumps into them:
//
//	    goto condLabel
//	caseLabel1:  body1 [goto exitLabel]
//	...
//	defaultLabel: default; goto exitLabel
//	condLabel:
//	    case _tS v1 goto caseLabel1
//	    ...
//	    case _tS _tS goto defaultLabel
//	exitLabel:
func genSwitch(c *Context, s *ast.Switch) {
	if ast.TypeOf(s.Subject) != types.Int {
		c.diag.Errorf(s.Pos, "switch expression must be of type int")
		return
	}

	subject := genExpression(c, s.Subject)
	exitLabel := c.newLabel()
	condLabel := c.newLabel()

	c.pushExit(exitLabel)
	defer c.popExit()

	plog.Debugf("switch (%s) in %s with %d cases, exit %s", s.Subject, subject, len(s.Cases), exitLabel)

	c.emit(&tac.Goto{Target: condLabel})
	for _, cs := range s.Cases {
		l := c.newLabel()
		c.caseLabels[cs] = l
		c.emitLabel(l)
		genStatement(c, cs.Body)
		if cs.HasBreak {
			c.emit(&tac.Goto{Target: exitLabel})
		}
	}

	defaultLabel := c.newLabel()
	c.emitLabel(defaultLabel)
	if s.Default != nil {
		genStatement(c, s.Default)
	}
	c.emit(&tac.Goto{Target: exitLabel})

	c.emitLabel(condLabel)
	for _, cs := range s.Cases {
		c.emit(&tac.CaseRow{Subject: subject, Value: cs.Value, Target: c.caseLabels[cs]})
	}
	c.emit(&tac.CaseRow{Subject: subject, Self: true, Target: defaultLabel})
	c.emitLabel(exitLabel)
}
