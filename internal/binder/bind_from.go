package binder

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/errs"
)

// bindFrom implements spec.md §4.2's FROM binding:
//  1. reject a duplicate alias (case-insensitive) with ErrDuplicateAlias;
//  2. resolveTable each entry, failing with ErrTableNotFound if unresolved;
//  3. reject more than one FROM entry with ErrNotImplemented("JOIN not
//     supported") — see SPEC_FULL.md §D.1 for why the planner restriction,
//     not the grammar, is the boundary.
func (b *Binder) bindFrom(stmt *ast.SelectStmt) error {
	seen := make(map[string]bool, len(stmt.From))
	for _, ref := range stmt.From {
		alias := key(ref.AliasOrName())
		if seen[alias] {
			return errs.ErrDuplicateAlias.New(ref.AliasOrName())
		}
		seen[alias] = true
	}

	for i, ref := range stmt.From {
		resolved, err := b.resolveTable(ref)
		if err != nil {
			return err
		}
		stmt.From[i] = resolved
	}

	if len(stmt.From) > 1 {
		return errs.ErrNotImplemented.New("JOIN not supported")
	}
	return nil
}
