// Package diag counts recoverable compile errors and reports each one to the
// diagnostic channel as soon as it is found.
package diag

import (
	"fmt"
	"io"

	"github.com/pontaoski/tacc/types"
)

type Diagnostic struct {
	Location types.Span
	Msg      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Location.From.Line, d.Msg)
}

type Reporter struct {
	out   io.Writer
	diags []Diagnostic
}

func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

// Errorf records one error. It never stops the caller.
func (r *Reporter) Errorf(at types.Span, format string, args ...interface{}) {
	d := Diagnostic{Location: at, Msg: fmt.Sprintf(format, args...)}
	r.diags = append(r.diags, d)
	fmt.Fprintln(r.out, d)
}

// Report records an error that was already formatted elsewhere, such as a
// syntax error coming out of the parser.
func (r *Reporter) Report(at types.Span, err error) {
	d := Diagnostic{Location: at, Msg: err.Error()}
	r.diags = append(r.diags, d)
	fmt.Fprintln(r.out, err)
}

func (r *Reporter) Count() int {
	return len(r.diags)
}

func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}
