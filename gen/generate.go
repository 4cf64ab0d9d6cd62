package gen

import (
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/errors"
	"github.com/pontaoski/tacc/tac"
)

// Generate emits the code for a whole program: declaration initializers in
// source order, the body, then halt.
//
// Recoverable errors go to the context's reporter and generation carries on.
// A fatal error stops generation where it happened and is returned; the code
// emitted before it has already been written out.
func Generate(c *Context, prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := r.(errors.Fatal)
			if !ok {
				panic(r)
			}
			plog.Debugf("generation stopped: %s", fatal)
			err = fatal
		}
		if ferr := c.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	for _, decl := range prog.Decls {
		if decl.Init != nil {
			genAssign(c, decl.Init)
		}
	}
	if prog.Body != nil {
		genStatement(c, prog.Body)
	}
	c.emit(&tac.Halt{})
	plog.Debugf("generated %d instructions, %d temporaries, %d labels", len(c.code), c.temps, c.labels)
	return nil
}
