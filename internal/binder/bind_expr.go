package binder

import (
	"github.com/andb/andb/internal/errs"
	"github.com/andb/andb/internal/expr"
)

// bindExpr recursively binds e, handling each Expr variant per spec.md
// §4.2/§4.3: ConstExpr needs nothing (already typed at construction),
// ColExpr resolves its name against scope and types from the column's SQL
// type, BinExpr binds both children first then dispatches the operator.
func (b *Binder) bindExpr(e expr.Expr) error {
	switch n := e.(type) {
	case *expr.ConstExpr:
		return nil

	case *expr.ColExpr:
		return b.bindColExpr(n)

	case *expr.BinExpr:
		if err := b.bindExpr(n.Left); err != nil {
			return err
		}
		if err := b.bindExpr(n.Right); err != nil {
			return err
		}
		if err := n.Bind(); err != nil {
			return err
		}
		return nil

	case *expr.SelStar:
		// Stars are expanded away before binding reaches here; nothing to
		// type.
		return nil

	default:
		return nil
	}
}

// bindColExpr resolves ce's name to a column reference and sets its Type
// from the column's SQL type via the §4.2 mapping (Integer→Int32,
// Long→Int64, Bool→Bool, Double→Double, Char→String); any other SQL type
// fails with ErrUnsupportedType.
func (b *Binder) bindColExpr(ce *expr.ColExpr) error {
	if ce.ColumnDef == nil {
		resolved, ok := b.ResolveColumn(ce.ColName, ce.TabName)
		if !ok {
			return errs.ErrColumnNotFound.New(ce.ColName)
		}
		ce.Ordinal = resolved.Ordinal
		ce.ColumnDef = resolved.ColumnDef
		ce.TabName = resolved.TabName
	}

	dt, ok := ce.ColumnDef.Type.DatumType()
	if !ok {
		return errs.ErrUnsupportedType.New(ce.ColName, ce.ColumnDef.Type)
	}
	ce.SetType(dt)
	return nil
}
