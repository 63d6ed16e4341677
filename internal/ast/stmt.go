// Package ast holds the statement AST the (out-of-scope) parser is assumed
// to produce: SelectStmt with FROM/SELECT/WHERE, and the TableRef variants
// (spec.md §3.6).
package ast

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/expr"
)

// SelectStmt owns FROM, the projection list, and an optional WHERE.
type SelectStmt struct {
	From      []TableRef
	Selection []expr.Expr
	Where     expr.Expr
}

// TableRef is the sum type BaseTableRef | QueryRef (spec.md §3.6). Only
// BaseTableRef is exercised by the binder/planner/executor; QueryRef is
// accepted structurally so a future revision can wire subqueries without a
// shape change here.
type TableRef interface {
	AliasOrName() string
	// ColRefs returns the cached sequence of column references stored with
	// setColRefs. The binder does not populate it, so it is empty after
	// binding.
	ColRefs() []*expr.ColExpr
	setColRefs([]*expr.ColExpr)
}

type refBase struct {
	colRefs []*expr.ColExpr
}

func (r *refBase) ColRefs() []*expr.ColExpr        { return r.colRefs }
func (r *refBase) setColRefs(c []*expr.ColExpr)     { r.colRefs = c }

// BaseTableRef references a catalog table, optionally aliased.
type BaseTableRef struct {
	refBase
	TabName string
	Alias   string // empty means "use TabName"
	TabDef  *catalog.TableDef // set by the binder once resolved
}

// NewBaseTableRef builds a BaseTableRef; alias defaults to TabName when
// empty, per spec.md §3.6.
func NewBaseTableRef(tabName, alias string) *BaseTableRef {
	return &BaseTableRef{TabName: tabName, Alias: alias}
}

func (b *BaseTableRef) AliasOrName() string {
	if b.Alias != "" {
		return b.Alias
	}
	return b.TabName
}

// QueryRef is reserved for future subqueries (spec.md §3.6); the core must
// accept the shape but never constructs one from user SQL in this scope.
type QueryRef struct {
	refBase
	Query           *SelectStmt
	Alias           string
	ColOutputNames  []string
}

func (q *QueryRef) AliasOrName() string { return q.Alias }

var _ TableRef = (*BaseTableRef)(nil)
var _ TableRef = (*QueryRef)(nil)
