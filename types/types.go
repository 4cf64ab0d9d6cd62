package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	INT_NUM
	FLOAT_NUM
	ID

	ADDOP
	MULOP
	RELOP

	SEMICOLON
	ASSIGN
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COLON

	AUTO
	INT
	FLOAT
	READ
	WRITE
	IF
	ELSE
	WHILE
	FOR
	SWITCH
	CASE
	DEFAULT
	BREAK
	OR
	AND
	FAND
	NOT
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:       "EOF",
		ILLEGAL:   "ILLEGAL",
		INT_NUM:   "INT_NUM",
		FLOAT_NUM: "FLOAT_NUM",
		ID:        "ID",
		ADDOP:     "ADDOP",
		MULOP:     "MULOP",
		RELOP:     "RELOP",
		SEMICOLON: "';'",
		ASSIGN:    "'='",
		LPAREN:    "'('",
		RPAREN:    "')'",
		LBRACE:    "'{'",
		RBRACE:    "'}'",
		COLON:     "':'",
		AUTO:      "AUTO",
		INT:       "INT",
		FLOAT:     "FLOAT",
		READ:      "READ",
		WRITE:     "WRITE",
		IF:        "IF",
		ELSE:      "ELSE",
		WHILE:     "WHILE",
		FOR:       "FOR",
		SWITCH:    "SWITCH",
		CASE:      "CASE",
		DEFAULT:   "DEFAULT",
		BREAK:     "BREAK",
		OR:        "OR",
		AND:       "AND",
		FAND:      "FAND",
		NOT:       "NOT",
	}
	return data[t]
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     TokenKind
	Location Span
}
