package llvm

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// addBuiltins declares the C library functions read and write are lowered to.
func addBuiltins(m *ir.Module) (ret map[string]value.Value) {
	ret = make(map[string]value.Value)

	funcs := []func(*ir.Module) (string, value.Value){
		addPrintf,
		addScanf,
	}
	for _, fn := range funcs {
		k, v := fn(m)
		ret[k] = v
	}

	return
}

func addVariadic(m *ir.Module, name string) *ir.Func {
	fn := m.NewFunc(name, types.I32, ir.NewParam("format", BytePointer))
	fn.Sig.Variadic = true
	return fn
}

func addPrintf(m *ir.Module) (string, value.Value) {
	return "printf", addVariadic(m, "printf")
}

func addScanf(m *ir.Module) (string, value.Value) {
	return "scanf", addVariadic(m, "scanf")
}
