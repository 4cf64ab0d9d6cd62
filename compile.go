package main

import (
	"io"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/tacc/ast"
	"github.com/pontaoski/tacc/diag"
	"github.com/pontaoski/tacc/gen"
	"github.com/pontaoski/tacc/lexer"
	"github.com/pontaoski/tacc/llvm"
	"github.com/pontaoski/tacc/parser"
	"github.com/pontaoski/tacc/symtab"
	"github.com/ztrue/tracerr"
)

// compile translates one source file, writing code to out and diagnostics to
// errOut. It reports whether the program compiled without diagnostics; err is
// only set for errors that stopped the translation.
func compile(in io.Reader, filename string, out, errOut io.Writer, s settings) (ok bool, err error) {
	r := diag.NewReporter(errOut)
	symbols := symtab.New()

	p := parser.NewParser(lexer.NewLexer(in, filename), ast.NewBuilder(symbols, r))
	prog, err := p.Parse()
	if err != nil {
		plog.Debugf("parse failed:\n%s", tracerr.Sprint(err))
		return false, nil
	}

	if s.DumpAST {
		repr.New(errOut, repr.Indent("  ")).Println(prog)
	}

	sink := out
	if s.Emit == emitLLVM {
		sink = io.Discard
	}
	c := gen.NewContext(sink, r)
	if err := gen.Generate(c, prog); err != nil {
		return false, err
	}
	plog.Infof("%s: %d instructions, %d diagnostics", filename, len(c.Code()), r.Count())

	if s.Emit == emitLLVM {
		m, err := llvm.Lower(c.Code(), symbols.Variables())
		if err != nil {
			return false, err
		}
		if _, err := io.WriteString(out, m.String()); err != nil {
			return false, tracerr.Wrap(err)
		}
	}

	return r.Count() == 0, nil
}
