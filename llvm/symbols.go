package llvm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/pontaoski/tacc/symtab"
)

const symbolsGlobal = "__tacc_symbols"

func registerSymbols(vars []symtab.Variable, m *ir.Module) {
	if vars == nil {
		vars = []symtab.Variable{}
	}
	data, err := json.Marshal(vars)
	if err != nil {
		panic(err)
	}

	g := m.NewGlobalDef(symbolsGlobal, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
}

// Symbols reads back the variable list a module was lowered with.
func Symbols(m *ir.Module) (vars []symtab.Variable, err error) {
	for _, g := range m.Globals {
		if g.Name() != symbolsGlobal {
			continue
		}
		arr, ok := g.Init.(*constant.CharArray)
		if !ok {
			return nil, fmt.Errorf("%s is not a character array", symbolsGlobal)
		}
		err = json.Unmarshal(bytes.TrimRight(arr.X, "\x00"), &vars)
		return vars, err
	}
	return nil, fmt.Errorf("module has no %s", symbolsGlobal)
}
