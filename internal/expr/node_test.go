package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// TestCloneEqualsHashLaws exercises spec.md §8.2's round-trip law —
// clone(expr).equals(expr) and hash(clone(expr)) == hash(expr) — across each
// expression node variant.
func TestCloneEqualsHashLaws(t *testing.T) {
	col := NewColExpr("a1", "a")
	col.Ordinal = 2
	bin := NewBinExpr(Add, NewConst(catalog.NewInt32(1)), col)
	star := NewSelStar("a")

	for name, e := range map[string]Expr{
		"const": NewConst(catalog.NewInt32(7)),
		"col":   col,
		"bin":   bin,
		"star":  star,
	} {
		t.Run(name, func(t *testing.T) {
			clone := tree.Clone(e).(Expr)
			require.True(t, tree.Equals(e, clone))
			require.Equal(t, tree.Hash(e), tree.Hash(clone))
		})
	}
}

func TestCloneIsDeepForBinExprChildren(t *testing.T) {
	left := NewConst(catalog.NewInt32(1))
	bin := NewBinExpr(Add, left, NewConst(catalog.NewInt32(2)))

	clone := tree.Clone(bin).(*BinExpr)

	// go-cmp's field-level diff is a second, independent check alongside
	// tree.Equals that the freshly cloned tree starts out identical.
	ignoreFn := cmpopts.IgnoreUnexported(base{}, BinExpr{}, ConstExpr{}, catalog.Datum{})
	if diff := cmp.Diff(bin, clone, ignoreFn); diff != "" {
		t.Fatalf("clone diverged from original before mutation (-orig +clone):\n%s", diff)
	}

	clone.Left.(*ConstExpr).Value = catalog.NewInt32(999)

	require.Equal(t, int32(1), left.Value.Int32())
	require.False(t, tree.Equals(bin, clone))
}

func TestExplainRendering(t *testing.T) {
	col := NewColExpr("a1", "a")
	add := NewBinExpr(Add, col, NewConst(catalog.NewInt32(1)))
	require.Equal(t, "(a.a1 + 1)", add.Explain())

	or := NewBinExpr(Or, NewConst(catalog.NewBool(true)), NewConst(catalog.NewBool(false)))
	require.Equal(t, "(true OR false)", or.Explain())

	eq := NewBinExpr(Equal, NewConst(catalog.NewInt32(1)), NewConst(catalog.NewInt32(2)))
	require.Equal(t, "1 = 2", eq.Explain())

	require.Equal(t, "*", NewSelStar("").Explain())
	require.Equal(t, "a.*", NewSelStar("a").Explain())
}

func TestColExprPayloadEqualsIsCaseInsensitive(t *testing.T) {
	a := &ColExpr{ColName: "Foo", TabName: "Bar"}
	b := &ColExpr{ColName: "foo", TabName: "BAR"}
	require.True(t, a.PayloadEquals(b))
}
