package symtab

import (
	"sort"

	"github.com/pontaoski/tacc/types"
)

type Variable struct {
	Name string     `json:"name"`
	Type types.Type `json:"type"`
}

// Table is the single global scope of a program. The language has no nested
// declarations, so one map is enough.
type Table struct {
	names map[string]types.Type
}

func New() *Table {
	return &Table{names: make(map[string]types.Type)}
}

// Declare adds name with type t. It returns false, and keeps the first
// declaration, when name is already declared.
func (t *Table) Declare(name string, typ types.Type) bool {
	if _, ok := t.names[name]; ok {
		return false
	}
	t.names[name] = typ
	return true
}

// Lookup returns the declared type of name, or types.Unknown.
func (t *Table) Lookup(name string) types.Type {
	if typ, ok := t.names[name]; ok {
		return typ
	}
	return types.Unknown
}

// Variables lists every declaration sorted by name.
func (t *Table) Variables() []Variable {
	vars := make([]Variable, 0, len(t.names))
	for name, typ := range t.names {
		vars = append(vars, Variable{Name: name, Type: typ})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
