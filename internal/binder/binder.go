package binder

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/errs"
	"github.com/andb/andb/internal/expr"
)

// Binder owns the current scope plus subquery/value id counters (spec.md
// §4.2). One Binder is constructed per statement by the driver.
type Binder struct {
	cur          *scope
	cat          *catalog.Catalog
	nextSubquery int
	nextValue    int
}

// New builds a Binder rooted at an empty top-level scope against cat.
func New(cat *catalog.Catalog) *Binder {
	return &Binder{cur: newScope(nil), cat: cat}
}

func (b *Binder) nextValueID() int {
	id := b.nextValue
	b.nextValue++
	return id
}

// Bind delegates to the statement's own bind routine.
func (b *Binder) Bind(stmt *ast.SelectStmt) error {
	return b.bindSelectStmt(stmt)
}

// bindSelectStmt binds FROM first, then selections, then WHERE, halting on
// the first error (spec.md §4.2).
func (b *Binder) bindSelectStmt(stmt *ast.SelectStmt) error {
	if err := b.bindFrom(stmt); err != nil {
		return err
	}
	if err := b.bindSelections(stmt); err != nil {
		return err
	}
	if err := b.bindWhere(stmt); err != nil {
		return err
	}
	return nil
}

// resolveTable walks scopes from innermost outward; if not found in any
// scope, queries the catalog. When found only in the catalog, a new
// BaseTableRef is created and inserted into the current scope (spec.md
// §4.2).
func (b *Binder) resolveTable(ref ast.TableRef) (ast.TableRef, error) {
	alias := ref.AliasOrName()
	if found, ok := b.cur.lookupChain(alias); ok {
		return found, nil
	}

	base, ok := ref.(*ast.BaseTableRef)
	if !ok {
		// QueryRef: nothing to resolve against the catalog; register as-is.
		b.cur.put(alias, ref)
		return ref, nil
	}

	td, ok := b.cat.Sys.TryTable(base.TabName)
	if !ok {
		return nil, errs.ErrTableNotFound.New(base.TabName)
	}
	base.TabDef = td
	b.cur.put(alias, base)
	return base, nil
}

// GetTableRef returns the TableRef bound in the current scope under alias.
func (b *Binder) GetTableRef(alias string) (ast.TableRef, bool) {
	return b.cur.get(alias)
}

// GetColumnRef looks up a column in the current scope: if tabName is given,
// only that table's columns are searched; otherwise every table in scope is
// scanned and the first match wins (spec.md §4.2). A qualified tabName that
// does name an in-scope alias always wins over an otherwise-ambiguous bare
// lookup — see SPEC_FULL.md §C.1.
func (b *Binder) GetColumnRef(colName, tabName string) (*expr.ColExpr, bool) {
	if tabName != "" {
		ref, ok := b.cur.get(tabName)
		if !ok {
			return nil, false
		}
		return colRefIn(ref, colName)
	}
	for _, ref := range b.cur.allInOrder() {
		if ce, ok := colRefIn(ref, colName); ok {
			return ce, true
		}
	}
	return nil, false
}

// ResolveColumn is GetColumnRef but walks up the scope chain.
func (b *Binder) ResolveColumn(colName, tabName string) (*expr.ColExpr, bool) {
	for cur := b.cur; cur != nil; cur = cur.parent {
		save := b.cur
		b.cur = cur
		ce, ok := b.GetColumnRef(colName, tabName)
		b.cur = save
		if ok {
			return ce, true
		}
	}
	return nil, false
}

func colRefIn(ref ast.TableRef, colName string) (*expr.ColExpr, bool) {
	base, ok := ref.(*ast.BaseTableRef)
	if !ok || base.TabDef == nil {
		return nil, false
	}
	cd, ok := base.TabDef.Column(colName)
	if !ok {
		return nil, false
	}
	ce := expr.NewColExpr(cd.Name, base.AliasOrName())
	ce.Ordinal = uint16(cd.Ordinal)
	cdCopy := cd
	ce.ColumnDef = &cdCopy
	return ce, true
}

// GetTableColumns returns a fresh sequence of ColExpr clones for every
// column of the table bound under tabAlias.
func (b *Binder) GetTableColumns(tabAlias string) ([]*expr.ColExpr, error) {
	ref, ok := b.cur.get(tabAlias)
	if !ok {
		return nil, errs.ErrTableNotFound.New(tabAlias)
	}
	base, ok := ref.(*ast.BaseTableRef)
	if !ok || base.TabDef == nil {
		return nil, errs.ErrTableNotFound.New(tabAlias)
	}
	cols := make([]*expr.ColExpr, 0, len(base.TabDef.ColumnsInOrder()))
	for _, cd := range base.TabDef.ColumnsInOrder() {
		ce, _ := colRefIn(base, cd.Name)
		cols = append(cols, ce)
	}
	return cols, nil
}

// GetAllTableColumns concatenates GetTableColumns over every table in scope,
// in FROM order.
func (b *Binder) GetAllTableColumns() []*expr.ColExpr {
	var all []*expr.ColExpr
	for _, ref := range b.cur.allInOrder() {
		cols, err := b.GetTableColumns(ref.AliasOrName())
		if err != nil {
			continue
		}
		all = append(all, cols...)
	}
	return all
}
