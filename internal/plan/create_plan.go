package plan

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/errs"
)

// CreatePlan builds the logical plan tree for a bound SelectStmt (spec.md
// §4.4): transformFromClause folds FROM into a LogicScan or a left-deep
// LogicJoin, then, if WHERE is present, it is attached to the root via
// AddFilter — which only a LogicScan supports; any other plan shape fails
// with ErrNotImplemented. Finally, a non-empty SELECT list wraps the root in
// a LogicProject, since the scan (or join) below it only ever emits
// full-width source rows (spec.md §4.5).
func CreatePlan(stmt *ast.SelectStmt) (Logical, error) {
	root, err := transformFromClause(stmt)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	if stmt.Where != nil {
		scan, ok := root.(*LogicScan)
		if !ok {
			return nil, errs.ErrNotImplemented.New("WHERE on a non-scan plan root")
		}
		scan.AddFilter(stmt.Where)
	}

	if len(stmt.Selection) > 0 {
		root = NewLogicProject(root, stmt.Selection)
	}

	return root, nil
}

// transformFromClause folds stmt.From left to right: a single entry becomes
// a LogicScan, two or more fold into a left-deep LogicJoin, and an empty
// FROM yields a nil plan (spec.md §4.4 step 1). The binder already refuses
// a multi-table FROM (SPEC_FULL.md §D.1), so the LogicJoin path here is only
// ever reached by tests building a plan directly, bypassing the binder.
func transformFromClause(stmt *ast.SelectStmt) (Logical, error) {
	if len(stmt.From) == 0 {
		return nil, nil
	}

	var root Logical
	for _, ref := range stmt.From {
		base, ok := ref.(*ast.BaseTableRef)
		if !ok {
			return nil, errs.ErrNotImplemented.New("subquery FROM")
		}
		scan := NewLogicScan(base)
		if root == nil {
			root = scan
		} else {
			root = NewLogicJoin(root, scan)
		}
	}
	return root, nil
}
