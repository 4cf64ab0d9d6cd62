package lexer

import (
	"bufio"
	"io"
	"unicode"

	"github.com/pontaoski/tacc/errors"
	"github.com/pontaoski/tacc/types"
)

type lexeme struct {
	tok types.Token
	lit string
}

type Lexer struct {
	pos    types.Position
	reader *bufio.Reader
	peeked []lexeme
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

var keywords = map[string]types.TokenKind{
	"auto":    types.AUTO,
	"int":     types.INT,
	"float":   types.FLOAT,
	"read":    types.READ,
	"write":   types.WRITE,
	"if":      types.IF,
	"else":    types.ELSE,
	"while":   types.WHILE,
	"for":     types.FOR,
	"switch":  types.SWITCH,
	"case":    types.CASE,
	"default": types.DEFAULT,
	"break":   types.BREAK,
	"or":      types.OR,
	"and":     types.AND,
	"fand":    types.FAND,
	"not":     types.NOT,
}

var punctuation = map[rune]types.TokenKind{
	';': types.SEMICOLON,
	':': types.COLON,
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'+': types.ADDOP,
	'-': types.ADDOP,
	'*': types.MULOP,
	'%': types.MULOP,
}

func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	} else {
		l.pos.Column++
	}
	return r, true
}

// peekRune looks at the next rune without consuming it.
func (l *Lexer) peekRune() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}
	return r, true
}

func (l *Lexer) kinded(t types.TokenKind, from types.Position) types.Token {
	return types.Token{
		Kind:     t,
		Location: types.Span{From: from, To: l.pos},
	}
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || unicode.IsDigit(r)
}

func (l *Lexer) lexWhile(first rune, ok func(rune) bool) string {
	lit := string(first)
	for {
		r, more := l.peekRune()
		if !more || !ok(r) {
			return lit
		}
		l.read()
		lit += string(r)
	}
}

func (l *Lexer) lexNumber(first rune, from types.Position) (types.Token, string) {
	lit := l.lexWhile(first, unicode.IsDigit)
	if r, ok := l.peekRune(); !ok || r != '.' {
		return l.kinded(types.INT_NUM, from), lit
	}
	l.read()
	lit += "."
	r, ok := l.peekRune()
	if !ok || !unicode.IsDigit(r) {
		panic(errors.BadNumber{Literal: lit, Location: types.Span{From: from, To: l.pos}})
	}
	l.read()
	lit = lit + l.lexWhile(r, unicode.IsDigit)
	return l.kinded(types.FLOAT_NUM, from), lit
}

// skipComment is called after a '/' whose next rune starts a comment.
func (l *Lexer) skipComment() {
	r, _ := l.read()
	if r == '/' {
		for {
			r, ok := l.read()
			if !ok || r == '\n' {
				return
			}
		}
	}
	var prev rune
	for {
		r, ok := l.read()
		if !ok {
			return
		}
		if prev == '*' && r == '/' {
			return
		}
		prev = r
	}
}

func (l *Lexer) scan() (types.Token, string) {
	for {
		r, ok := l.read()
		if !ok {
			return l.kinded(types.EOF, l.pos), ""
		}
		from := l.pos

		if kind, ok := punctuation[r]; ok {
			return l.kinded(kind, from), string(r)
		}

		switch r {
		case '/':
			if next, ok := l.peekRune(); ok && (next == '/' || next == '*') {
				l.skipComment()
				continue
			}
			return l.kinded(types.MULOP, from), "/"
		case '<', '>', '=', '!':
			if next, ok := l.peekRune(); ok && next == '=' {
				l.read()
				return l.kinded(types.RELOP, from), string(r) + "="
			}
			switch r {
			case '=':
				return l.kinded(types.ASSIGN, from), "="
			case '!':
				panic(errors.IllegalCharacter{Char: r, Location: types.SingleCharSpan(from)})
			}
			return l.kinded(types.RELOP, from), string(r)
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsDigit(r):
			return l.lexNumber(r, from)
		case firstChar(r):
			lit := l.lexWhile(r, otherChar)
			if kind, ok := keywords[lit]; ok {
				return l.kinded(kind, from), lit
			}
			return l.kinded(types.ID, from), lit
		}

		panic(errors.IllegalCharacter{Char: r, Location: types.SingleCharSpan(from)})
	}
}

// PeekN returns the token n positions ahead without consuming anything;
// PeekN(0) is the next token.
func (l *Lexer) PeekN(n int) (types.Token, string) {
	for len(l.peeked) <= n {
		if len(l.peeked) > 0 && l.peeked[len(l.peeked)-1].tok.Kind == types.EOF {
			break
		}
		tok, lit := l.scan()
		l.peeked = append(l.peeked, lexeme{tok, lit})
	}
	if n >= len(l.peeked) {
		last := l.peeked[len(l.peeked)-1]
		return last.tok, last.lit
	}
	return l.peeked[n].tok, l.peeked[n].lit
}

func (l *Lexer) Peek() (types.Token, string) {
	return l.PeekN(0)
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	token, _ := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

func (l *Lexer) LexExpecting(k ...types.TokenKind) (types.Token, string) {
	token, lit := l.Lex()
	for _, kind := range k {
		if token.Kind == kind {
			return token, lit
		}
	}

	if len(k) == 1 {
		panic(errors.ExpectedKindGotKind{
			Expected: k[0],
			Got:      token.Kind,
			Location: token.Location,
		})
	}
	panic(errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      token.Kind,
		Location: token.Location,
	})
}

func (l *Lexer) Lex() (types.Token, string) {
	if len(l.peeked) > 0 {
		next := l.peeked[0]
		if next.tok.Kind != types.EOF {
			l.peeked = l.peeked[1:]
		}
		return next.tok, next.lit
	}
	return l.scan()
}
