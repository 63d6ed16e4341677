package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andb/andb/internal/expr"
)

func TestBaseTableRefAliasDefaultsToTabName(t *testing.T) {
	ref := NewBaseTableRef("orders", "")
	require.Equal(t, "orders", ref.AliasOrName())

	aliased := NewBaseTableRef("orders", "o")
	require.Equal(t, "o", aliased.AliasOrName())
}

func TestTableRefColRefsRoundTrip(t *testing.T) {
	ref := NewBaseTableRef("a", "")
	cols := []*expr.ColExpr{expr.NewColExpr("a1", "a")}
	ref.setColRefs(cols)
	require.Equal(t, cols, ref.ColRefs())
}

func TestQueryRefAliasOrName(t *testing.T) {
	q := &QueryRef{Alias: "sub"}
	require.Equal(t, "sub", q.AliasOrName())
}
