// Package expr implements the scalar expression tree (spec.md §3.7, §4.1)
// and its stack-slot evaluator (spec.md §4.3).
//
// Grounded on the teacher's sql/expression test files for the public shape
// (expression.NewGetField(ordinal, type, name, nullable), expression.NewLiteral,
// NewEquals/binary-op constructors) and on original_source's parser/include/expr.h
// for the ConstExpr/ColExpr/BinExpr field layout the distilled spec
// summarizes.
package expr

import (
	"fmt"

	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// Expr is the capability set every expression node variant implements, on
// top of the shared tree.Node traversal/hash/clone/equals contract.
type Expr interface {
	tree.Node

	Type() catalog.DataType
	// SetType is used only by the binder, once a ColExpr's SQL type is
	// resolved or a BinExpr's dispatch result type is computed.
	SetType(catalog.DataType)
	Alias() string
	SetAlias(string)
	Slot() int
	SetSlot(int)
	ValueID() int
	SetValueID(int)
}

// base holds the fields common to every Expr variant (spec.md §3.7): output
// type, optional alias, evaluation slot, and the reserved post-binding
// value id. Concrete variants embed base and implement the variant-specific
// parts of tree.Node themselves.
type base struct {
	typ     catalog.DataType
	alias   string
	slot    int
	valueID int
}

func (b *base) Type() catalog.DataType      { return b.typ }
func (b *base) SetType(t catalog.DataType)  { b.typ = t }
func (b *base) Alias() string          { return b.alias }
func (b *base) SetAlias(a string)      { b.alias = a }
func (b *base) Slot() int              { return b.slot }
func (b *base) SetSlot(s int)          { b.slot = s }
func (b *base) ValueID() int           { return b.valueID }
func (b *base) SetValueID(v int)       { b.valueID = v }

// renderBinary renders "<l> <op> <r>", parenthesized when op is one of
// {Add, Sub, Or} per spec.md §6.2.
func renderBinary(op BinOp, l, r string) string {
	s := fmt.Sprintf("%s %s %s", l, op.Symbol(), r)
	switch op {
	case Add, Sub, Or:
		return "(" + s + ")"
	default:
		return s
	}
}
