package parser

import (
	"strconv"

	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/errors"
	"github.com/pontaoski/tacc/lexer"
	"github.com/pontaoski/tacc/types"
	"github.com/ztrue/tracerr"
)

type Parser struct {
	l *lexer.Lexer
	b *ast.Builder
}

func NewParser(l *lexer.Lexer, b *ast.Builder) Parser {
	return Parser{l, b}
}

// Parse reads a whole program. Nodes are built, and type checked, in the
// order their productions complete, so declarations are in the symbol table
// before the statements that use them are built.
//
// The first syntax error ends the parse; it is counted with the other
// diagnostics and returned.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}
			p.b.Diag.Report(locationOf(rerr), rerr)
			prog = nil
			err = tracerr.Wrap(rerr)
		}
	}()

	prog = &ast.Program{}
	for p.l.PeekIs(types.INT, types.FLOAT, types.AUTO) {
		prog.Decls = append(prog.Decls, p.parseDeclaration())
	}

	var body []ast.Statement
	for !p.l.PeekIs(types.EOF) {
		body = append(body, p.parseStatement())
	}
	if len(body) == 1 {
		prog.Body = body[0]
	} else {
		prog.Body = &ast.Block{Stmts: body}
	}
	return prog, nil
}

func locationOf(err error) types.Span {
	switch e := err.(type) {
	case errors.ExpectedKindGotKind:
		return e.Location
	case errors.ExpectedOneOfKindGotKind:
		return e.Location
	case errors.IllegalCharacter:
		return e.Location
	case errors.BadNumber:
		return e.Location
	}
	return types.Span{}
}

func (p *Parser) parseDeclaration() *ast.Declaration {
	tok, kw := p.l.LexExpecting(types.INT, types.FLOAT, types.AUTO)
	nameTok, name := p.l.LexExpecting(types.ID)

	decl := &ast.Declaration{Name: name, Pos: nameTok.Location}

	if tok.Kind == types.AUTO || p.l.PeekIs(types.ASSIGN) {
		eq, _ := p.l.LexExpecting(types.ASSIGN)
		init := p.parseExpression()
		p.l.LexExpecting(types.SEMICOLON)

		decl.Typ = ast.TypeOf(init)
		if kw != "auto" {
			decl.Typ = declType(tok.Kind)
		}
		if p.b.Declare(name, decl.Typ, nameTok.Location) {
			lhs := p.b.NewIdentifier(name, nameTok.Location)
			decl.Init = p.b.NewAssign(lhs, init, eq.Location)
		}
		return decl
	}

	p.l.LexExpecting(types.SEMICOLON)
	decl.Typ = declType(tok.Kind)
	p.b.Declare(name, decl.Typ, nameTok.Location)
	return decl
}

func declType(k types.TokenKind) types.Type {
	if k == types.FLOAT {
		return types.Float
	}
	return types.Int
}

func (p *Parser) parseStatement() ast.Statement {
	tok, _ := p.l.Peek()

	switch tok.Kind {
	case types.ID:
		return p.parseAssign(true)
	case types.READ:
		p.l.Lex()
		p.l.LexExpecting(types.LPAREN)
		idTok, name := p.l.LexExpecting(types.ID)
		p.l.LexExpecting(types.RPAREN)
		p.l.LexExpecting(types.SEMICOLON)
		return &ast.Read{ID: p.b.NewIdentifier(name, idTok.Location), Pos: tok.Location}
	case types.WRITE:
		p.l.Lex()
		value := p.parseExpression()
		p.l.LexExpecting(types.SEMICOLON)
		return &ast.Write{Value: value, Pos: tok.Location}
	case types.WHILE:
		p.l.Lex()
		cond := p.parseParenBoolean()
		return &ast.While{Condition: cond, Body: p.parseStatement()}
	case types.IF:
		p.l.Lex()
		cond := p.parseParenBoolean()
		then := p.parseStatement()
		var elseStmt ast.Statement
		if p.l.PeekIs(types.ELSE) {
			p.l.Lex()
			elseStmt = p.parseStatement()
		}
		return &ast.If{Condition: cond, Then: then, Else: elseStmt}
	case types.FOR:
		p.l.Lex()
		p.l.LexExpecting(types.LPAREN)
		init := p.parseAssign(true)
		cond := p.parseBoolean()
		p.l.LexExpecting(types.SEMICOLON)
		step := p.parseAssign(false)
		if p.l.PeekIs(types.SEMICOLON) {
			p.l.Lex()
		}
		p.l.LexExpecting(types.RPAREN)
		return &ast.For{Init: init, Condition: cond, Step: step, Body: p.parseStatement()}
	case types.SWITCH:
		return p.parseSwitch()
	case types.BREAK:
		p.l.Lex()
		p.l.LexExpecting(types.SEMICOLON)
		return &ast.Break{Pos: tok.Location}
	case types.LBRACE:
		return p.parseBlock()
	}

	p.l.LexExpecting(types.ID, types.READ, types.WRITE, types.WHILE, types.IF, types.FOR, types.SWITCH, types.BREAK, types.LBRACE)
	panic("unreachable")
}

// parseAssign parses `ID = expression`, and the closing ';' when semi is set.
func (p *Parser) parseAssign(semi bool) *ast.Assign {
	idTok, name := p.l.LexExpecting(types.ID)
	lhs := p.b.NewIdentifier(name, idTok.Location)
	eq, _ := p.l.LexExpecting(types.ASSIGN)
	rhs := p.parseExpression()
	if semi {
		p.l.LexExpecting(types.SEMICOLON)
	}
	return p.b.NewAssign(lhs, rhs, eq.Location)
}

// parseBlock should be called when the parser is at the opening brace
func (p *Parser) parseBlock() ast.Statement {
	p.l.LexExpecting(types.LBRACE)
	var stmts []ast.Statement
	for !p.l.PeekIs(types.RBRACE) {
		stmts = append(stmts, p.parseStatement())
	}
	p.l.LexExpecting(types.RBRACE)
	return &ast.Block{Stmts: stmts}
}

func (p *Parser) parseSwitch() ast.Statement {
	tok, _ := p.l.LexExpecting(types.SWITCH)
	p.l.LexExpecting(types.LPAREN)
	subject := p.parseExpression()
	p.l.LexExpecting(types.RPAREN)
	p.l.LexExpecting(types.LBRACE)

	var cases []*ast.Case
	for {
		caseTok, _ := p.l.LexExpecting(types.CASE)
		numTok, lit := p.l.LexExpecting(types.INT_NUM)
		p.l.LexExpecting(types.COLON)
		cs := &ast.Case{
			Value: p.parseIntLiteral(numTok, lit),
			Body:  p.parseStatement(),
			Pos:   caseTok.Location,
		}
		if p.l.PeekIs(types.BREAK) {
			p.l.Lex()
			p.l.LexExpecting(types.SEMICOLON)
			cs.HasBreak = true
		}
		cases = append(cases, cs)

		if !p.l.PeekIs(types.CASE) {
			break
		}
	}

	var def ast.Statement
	if p.l.PeekIs(types.DEFAULT) {
		p.l.Lex()
		p.l.LexExpecting(types.COLON)
		def = p.parseStatement()
	}
	p.l.LexExpecting(types.RBRACE)

	return p.b.NewSwitch(subject, cases, def, tok.Location)
}

func (p *Parser) parseIntLiteral(tok types.Token, lit string) int64 {
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		panic(errors.BadNumber{Literal: lit, Location: tok.Location})
	}
	return v
}

// Expressions: ADDOP binds looser than MULOP, both left associative.

func (p *Parser) parseExpression() ast.Expression {
	left := p.parseTerm()
	for p.l.PeekIs(types.ADDOP) {
		tok, lit := p.l.Lex()
		left = p.b.NewBinaryOp(parseOp(lit), left, p.parseTerm(), tok.Location)
	}
	return left
}

func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()
	for p.l.PeekIs(types.MULOP) {
		tok, lit := p.l.Lex()
		left = p.b.NewBinaryOp(parseOp(lit), left, p.parseFactor(), tok.Location)
	}
	return left
}

func (p *Parser) parseFactor() ast.Expression {
	tok, lit := p.l.LexExpecting(types.LPAREN, types.ID, types.INT_NUM, types.FLOAT_NUM)

	switch tok.Kind {
	case types.LPAREN:
		expr := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		return expr
	case types.ID:
		return p.b.NewIdentifier(lit, tok.Location)
	case types.INT_NUM:
		return p.b.NewInt(p.parseIntLiteral(tok, lit), tok.Location)
	case types.FLOAT_NUM:
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			panic(errors.BadNumber{Literal: lit, Location: tok.Location})
		}
		return p.b.NewFloat(v, tok.Location)
	}

	panic("unhandled")
}

func parseOp(lit string) types.Op {
	op, ok := types.ParseOp(lit)
	if !ok {
		panic("unhandled operator " + lit)
	}
	return op
}

// Boolean expressions: or binds looser than and/fand, both left associative.

func (p *Parser) parseParenBoolean() ast.BooleanExpression {
	p.l.LexExpecting(types.LPAREN)
	b := p.parseBoolean()
	p.l.LexExpecting(types.RPAREN)
	return b
}

func (p *Parser) parseBoolean() ast.BooleanExpression {
	left := p.parseBooleanTerm()
	for p.l.PeekIs(types.OR) {
		p.l.Lex()
		left = &ast.Or{Left: left, Right: p.parseBooleanTerm()}
	}
	return left
}

func (p *Parser) parseBooleanTerm() ast.BooleanExpression {
	left := p.parseBooleanFactor()
	for p.l.PeekIs(types.AND, types.FAND) {
		tok, _ := p.l.Lex()
		right := p.parseBooleanFactor()
		if tok.Kind == types.AND {
			left = &ast.And{Left: left, Right: right}
		} else {
			left = &ast.Fand{Left: left, Right: right}
		}
	}
	return left
}

func (p *Parser) parseBooleanFactor() ast.BooleanExpression {
	if p.l.PeekIs(types.NOT) {
		p.l.Lex()
		return &ast.Not{Operand: p.parseParenBoolean()}
	}
	if p.l.PeekIs(types.LPAREN) && p.groupIsBoolean() {
		return p.parseParenBoolean()
	}

	left := p.parseExpression()
	_, lit := p.l.LexExpecting(types.RELOP)
	return &ast.Comparison{Op: parseOp(lit), Left: left, Right: p.parseExpression()}
}

// groupIsBoolean looks ahead over the parenthesized group starting at the
// next token. Arithmetic never contains a relational operator or a boolean
// keyword, so finding one means the group is a boolean expression.
func (p *Parser) groupIsBoolean() bool {
	depth := 0
	for i := 0; ; i++ {
		tok, _ := p.l.PeekN(i)
		switch tok.Kind {
		case types.LPAREN:
			depth++
		case types.RPAREN:
			depth--
			if depth == 0 {
				return false
			}
		case types.RELOP, types.OR, types.AND, types.FAND, types.NOT:
			return true
		case types.EOF, types.SEMICOLON, types.LBRACE, types.RBRACE:
			return false
		}
	}
}
