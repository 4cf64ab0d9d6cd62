package ast

import (
	"fmt"
	"strconv"

	"github.com/pontaoski/tacc/types"
)

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (n *NumberLiteral) String() string {
	if n.Typ == types.Float {
		return strconv.FormatFloat(n.Float, 'f', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

func (i *Identifier) String() string {
	return i.Name
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s or %s)", o.Left, o.Right)
}

func (a *And) String() string {
	return fmt.Sprintf("(%s and %s)", a.Left, a.Right)
}

func (f *Fand) String() string {
	return fmt.Sprintf("(%s fand %s)", f.Left, f.Right)
}

func (n *Not) String() string {
	return fmt.Sprintf("not (%s)", n.Operand)
}
