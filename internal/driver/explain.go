package driver

import (
	"strings"

	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/physical"
)

// ExplainStmt renders spec.md §6.2's textual EXPLAIN:
//
//	select <expr>[, <expr>]* FROM <tref>[, <tref>]*[ WHERE <expr>]
//	Physical Plan
//	  <one line per physical node, 2*depth-indented>
//
// phys may be nil (an empty FROM yields no plan), in which case only the
// select-clause line is rendered.
func ExplainStmt(stmt *ast.SelectStmt, phys physical.Physical) string {
	var b strings.Builder
	b.WriteString("select ")
	for i, e := range stmt.Selection {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Explain())
	}
	b.WriteString(" FROM ")
	for i, ref := range stmt.From {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(explainTableRef(ref))
	}
	if stmt.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(stmt.Where.Explain())
	}

	if phys != nil {
		b.WriteString("\nPhysical Plan\n")
		b.WriteString(explainPhysicalTree(phys))
	}
	return b.String()
}

func explainTableRef(ref ast.TableRef) string {
	base, ok := ref.(*ast.BaseTableRef)
	if !ok {
		return ref.AliasOrName()
	}
	if base.Alias != "" && !strings.EqualFold(base.Alias, base.TabName) {
		return base.TabName + " AS " + base.Alias
	}
	return base.TabName
}

func explainPhysicalTree(p physical.Physical) string {
	var b strings.Builder
	var walk func(n physical.Physical, depth int)
	walk = func(n physical.Physical, depth int) {
		b.WriteString(strings.Repeat(" ", 2*depth))
		b.WriteString(n.ClassTag())
		b.WriteString("\n")
		for _, c := range n.Children() {
			walk(c.(physical.Physical), depth+1)
		}
	}
	walk(p, 0)
	return b.String()
}
