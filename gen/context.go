package gen

import (
	"bufio"
	"io"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/diag"
	"github.com/pontaoski/tacc/tac"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tacc", "gen")

// Context is the state of one compilation's code generation. Temporaries and
// labels are numbered from 1 and never reused within a Context.
type Context struct {
	out        *bufio.Writer
	diag       *diag.Reporter
	temps      int
	labels     int
	exits      []tac.Label
	caseLabels map[*ast.Case]tac.Label
	code       []tac.Instr
}

// NewContext streams every emitted instruction to out as soon as it is
// emitted. Pass io.Discard to only collect them.
func NewContext(out io.Writer, r *diag.Reporter) *Context {
	return &Context{
		out:        bufio.NewWriter(out),
		diag:       r,
		caseLabels: make(map[*ast.Case]tac.Label),
	}
}

func (c *Context) newTemp() tac.Temp {
	c.temps++
	return tac.Temp(c.temps)
}

func (c *Context) newLabel() tac.Label {
	c.labels++
	return tac.Label(c.labels)
}

func (c *Context) emit(i tac.Instr) {
	c.code = append(c.code, i)
	c.out.WriteString(tac.Line(i))
	c.out.WriteByte('\n')
}

func (c *Context) emitLabel(l tac.Label) {
	c.emit(&tac.Mark{Label: l})
}

func (c *Context) pushExit(l tac.Label) {
	c.exits = append(c.exits, l)
}

func (c *Context) popExit() {
	c.exits = c.exits[:len(c.exits)-1]
}

// exit is the jump target of a break: the exit label of the innermost loop
// or switch.
func (c *Context) exit() (tac.Label, bool) {
	if len(c.exits) == 0 {
		return 0, false
	}
	return c.exits[len(c.exits)-1], true
}

// Flush writes out whatever is still buffered.
func (c *Context) Flush() error {
	return c.out.Flush()
}

// Code is every instruction emitted so far, in order.
func (c *Context) Code() []tac.Instr {
	return c.code
}

// CaseLabel is the label given to a case during switch generation.
func (c *Context) CaseLabel(cs *ast.Case) (tac.Label, bool) {
	l, ok := c.caseLabels[cs]
	return l, ok
}

// Depth is the number of loops and switches currently being generated.
func (c *Context) Depth() int {
	return len(c.exits)
}
