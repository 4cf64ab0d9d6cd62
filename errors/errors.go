package errors

import (
	"fmt"

	"github.com/pontaoski/tacc/types"
)

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("line %d: syntax error, unexpected %s, expecting %s", e.Location.From.Line, e.Got, e.Expected)
}

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("line %d: syntax error, unexpected %s, expecting one of %s", e.Location.From.Line, e.Got, e.Expected)
}

type IllegalCharacter struct {
	Char     rune
	Location types.Span
}

func (e IllegalCharacter) Error() string {
	return fmt.Sprintf("line %d: syntax error, illegal character %q", e.Location.From.Line, e.Char)
}

type BadNumber struct {
	Literal  string
	Location types.Span
}

func (e BadNumber) Error() string {
	return fmt.Sprintf("line %d: syntax error, bad number %s", e.Location.From.Line, e.Literal)
}

// Fatal stops code generation on the spot. Everything else the compiler
// reports is recoverable and goes through diag.
type Fatal struct {
	Msg      string
	Location types.Span
}

func (e Fatal) Error() string {
	return fmt.Sprintf("line %d: fatal error: %s", e.Location.From.Line, e.Msg)
}
