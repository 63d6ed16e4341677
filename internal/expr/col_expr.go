package expr

import (
	"strings"

	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// ColExpr is a zero-arity column reference (spec.md §3.7).
type ColExpr struct {
	base
	Ordinal   uint16
	ColName   string
	TabName   string
	SchName   string
	ColumnDef *catalog.ColumnDef
}

var _ Expr = (*ColExpr)(nil)

// NewColExpr builds an unbound column reference; Ordinal and ColumnDef are
// filled in by the binder (spec.md §4.2's ColExpr binding).
func NewColExpr(colName, tabName string) *ColExpr {
	return &ColExpr{ColName: colName, TabName: tabName}
}

func (c *ColExpr) ClassTag() string      { return "ColExpr" }
func (c *ColExpr) Children() []tree.Node { return nil }

// PayloadHash hashes ColName/TabName/SchName lower-cased, so that two
// ColExprs PayloadEquals considers equal (it compares those fields with
// strings.EqualFold) always hash equally too.
func (c *ColExpr) PayloadHash() uint64 {
	return tree.HashLeaf(struct {
		Tag             string
		Ordinal         uint16
		ColName, TabName, SchName string
	}{"ColExpr", c.Ordinal, strings.ToLower(c.ColName), strings.ToLower(c.TabName), strings.ToLower(c.SchName)})
}

func (c *ColExpr) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*ColExpr)
	if !ok {
		return false
	}
	return c.Ordinal == o.Ordinal &&
		strings.EqualFold(c.ColName, o.ColName) &&
		strings.EqualFold(c.TabName, o.TabName) &&
		strings.EqualFold(c.SchName, o.SchName)
}

func (c *ColExpr) Clone(children []tree.Node) tree.Node {
	clone := *c
	return &clone
}

// Explain renders "[schema.][table.]name" per spec.md §6.2.
func (c *ColExpr) Explain() string {
	s := c.ColName
	if c.TabName != "" {
		s = c.TabName + "." + s
	}
	if c.SchName != "" {
		s = c.SchName + "." + s
	}
	return s
}
