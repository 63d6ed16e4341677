package binder

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/errs"
)

// bindWhere binds stmt.Where (when present) and enforces that its output
// type is Bool; anything else fails with ErrNotBoolean (spec.md §4.2).
func (b *Binder) bindWhere(stmt *ast.SelectStmt) error {
	if stmt.Where == nil {
		return nil
	}
	if err := b.bindExpr(stmt.Where); err != nil {
		return err
	}
	if stmt.Where.Type() != catalog.TypeBool {
		return errs.ErrNotBoolean.New()
	}
	return nil
}
