package llvm

import (
	"github.com/llir/llvm/ir/types"
	tactypes "github.com/pontaoski/tacc/types"
)

var (
	Int   = &types.IntType{BitSize: 32}
	Float = &types.FloatType{Kind: types.FloatKindDouble}
	Byte  = &types.IntType{BitSize: 8}

	BytePointer = types.NewPointer(Byte)
)

func typeOf(t tactypes.Type) types.Type {
	switch t {
	case tactypes.Int:
		return Int
	case tactypes.Float:
		return Float
	}
	panic(newLowerError("no machine type for %s", t))
}
