package expr

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// BinFunc is a pure binary function over Datums, the shape every dispatch
// table entry's implementation has (spec.md §4.3).
type BinFunc func(l, r catalog.Datum) catalog.Datum

// BinExpr is a binary operator node. Op is set at construction; fn and the
// base.typ result type are filled in by Bind (see dispatch.go) once both
// children are bound.
type BinExpr struct {
	base
	Op          BinOp
	Left, Right Expr
	fn          BinFunc
}

var _ Expr = (*BinExpr)(nil)

// NewBinExpr builds an unbound BinExpr; call Bind before evaluating it.
func NewBinExpr(op BinOp, l, r Expr) *BinExpr {
	return &BinExpr{Op: op, Left: l, Right: r}
}

func (b *BinExpr) ClassTag() string { return "BinExpr" }

func (b *BinExpr) Children() []tree.Node {
	return []tree.Node{b.Left, b.Right}
}

func (b *BinExpr) PayloadHash() uint64 {
	return tree.HashLeaf(struct {
		Tag string
		Op  int
	}{"BinExpr", int(b.Op)})
}

func (b *BinExpr) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*BinExpr)
	return ok && b.Op == o.Op
}

// Clone rebuilds the node from already-cloned children (tree.Clone's
// contract); fn/typ are preserved since they depend only on Op and the
// (now-identical) children's types.
func (b *BinExpr) Clone(children []tree.Node) tree.Node {
	clone := *b
	clone.Left = children[0].(Expr)
	clone.Right = children[1].(Expr)
	return &clone
}

func (b *BinExpr) Explain() string {
	return renderBinary(b.Op, b.Left.Explain(), b.Right.Explain())
}

// Eval applies the bound fn to already-evaluated operand Datums. Bind must
// have succeeded before Eval is called.
func (b *BinExpr) Eval(l, r catalog.Datum) catalog.Datum {
	return b.fn(l, r)
}
