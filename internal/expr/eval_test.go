package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andb/andb/internal/catalog"
)

func TestEvalConstantArithmetic(t *testing.T) {
	add := NewBinExpr(Add, NewConst(catalog.NewInt32(2)), NewConst(catalog.NewInt32(3)))
	require.NoError(t, add.Bind())

	ev := NewEval(add)
	require.NoError(t, ev.Open())
	defer ev.Close()

	got := ev.Exec(nil)
	require.Equal(t, int32(5), got.Int32())

	// Exec is idempotent/repeatable against the same (nil) row.
	got2 := ev.Exec(nil)
	require.Equal(t, int32(5), got2.Int32())
}

func TestEvalColExprAliasesRowNoCopy(t *testing.T) {
	col := NewColExpr("a1", "a")
	col.Ordinal = 1

	ev := NewEval(col)
	require.NoError(t, ev.Open())
	defer ev.Close()

	row := catalog.NewRow(catalog.NewInt32(10), catalog.NewInt32(20))
	got := ev.Exec(&row)
	require.Equal(t, int32(20), got.Int32())

	row.Set(1, catalog.NewInt32(99))
	got2 := ev.Exec(&row)
	require.Equal(t, int32(99), got2.Int32())
}

func TestEvalRowDrivenArithmeticWithNullPropagation(t *testing.T) {
	left := NewColExpr("x", "t")
	left.Ordinal = 0
	right := NewColExpr("y", "t")
	right.Ordinal = 1
	sum := NewBinExpr(Add, left, right)
	require.NoError(t, sum.Bind())

	ev := NewEval(sum)
	require.NoError(t, ev.Open())
	defer ev.Close()

	row := catalog.NewRow(catalog.NewInt32(4), catalog.NewInt32(5))
	got := ev.Exec(&row)
	require.Equal(t, int32(9), got.Int32())

	nullRow := catalog.NewRow(catalog.NewInt32(4), catalog.NullDatum)
	gotNull := ev.Exec(&nullRow)
	require.True(t, gotNull.IsNull())
}

func TestEvalNestedBinExprTree(t *testing.T) {
	// (1 + 2) * 3
	inner := NewBinExpr(Add, NewConst(catalog.NewInt32(1)), NewConst(catalog.NewInt32(2)))
	require.NoError(t, inner.Bind())
	outer := NewBinExpr(Mul, inner, NewConst(catalog.NewInt32(3)))
	require.NoError(t, outer.Bind())

	ev := NewEval(outer)
	require.NoError(t, ev.Open())
	defer ev.Close()

	got := ev.Exec(nil)
	require.Equal(t, int32(9), got.Int32())
}

func TestBindMissingDispatchEntryIsSemanticError(t *testing.T) {
	b := NewBinExpr(Add, NewConst(catalog.NewString("a")), NewConst(catalog.NewInt32(1)))
	err := b.Bind()
	require.Error(t, err)
}

func TestBindMixedInt32DoubleComparison(t *testing.T) {
	b := NewBinExpr(Less, NewConst(catalog.NewInt32(1)), NewConst(catalog.NewDouble(1.5)))
	require.NoError(t, b.Bind())

	ev := NewEval(b)
	require.NoError(t, ev.Open())
	defer ev.Close()

	got := ev.Exec(nil)
	require.True(t, got.Bool())
}
