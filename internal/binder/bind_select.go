package binder

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/expr"
)

// bindSelections replaces every SelStar in stmt.Selection with its column
// expansion, then binds every remaining expression post-order (spec.md
// §4.2).
func (b *Binder) bindSelections(stmt *ast.SelectStmt) error {
	var expanded []expr.Expr
	for _, e := range stmt.Selection {
		if star, ok := e.(*expr.SelStar); ok {
			cols, err := b.expandStar(star)
			if err != nil {
				return err
			}
			expanded = append(expanded, cols...)
			continue
		}
		expanded = append(expanded, e)
	}
	stmt.Selection = expanded

	for _, e := range stmt.Selection {
		if err := b.bindExpr(e); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binder) expandStar(star *expr.SelStar) ([]expr.Expr, error) {
	if star.TabAlias != "" {
		cols, err := b.GetTableColumns(star.TabAlias)
		if err != nil {
			return nil, err
		}
		return colExprsToExprs(cols), nil
	}
	return colExprsToExprs(b.GetAllTableColumns()), nil
}

func colExprsToExprs(cols []*expr.ColExpr) []expr.Expr {
	out := make([]expr.Expr, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
