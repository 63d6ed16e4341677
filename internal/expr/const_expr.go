package expr

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// ConstExpr is a zero-arity literal (spec.md §3.7).
type ConstExpr struct {
	base
	Value catalog.Datum
}

var _ Expr = (*ConstExpr)(nil)

// NewConst builds a ConstExpr typed from v's own Datum tag.
func NewConst(v catalog.Datum) *ConstExpr {
	return &ConstExpr{base: base{typ: v.Type()}, Value: v}
}

func (c *ConstExpr) ClassTag() string   { return "ConstExpr" }
func (c *ConstExpr) Children() []tree.Node { return nil }

func (c *ConstExpr) PayloadHash() uint64 {
	return tree.HashLeaf(struct {
		Tag string
		V   string
	}{"ConstExpr", c.Value.ToString() + c.Value.Type().String()})
}

func (c *ConstExpr) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*ConstExpr)
	return ok && c.Value.Equals(o.Value)
}

func (c *ConstExpr) Clone(children []tree.Node) tree.Node {
	clone := *c
	return &clone
}

func (c *ConstExpr) Explain() string { return c.Value.ToString() }
