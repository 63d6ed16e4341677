package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/config"
	"github.com/andb/andb/internal/driver"
	"github.com/andb/andb/internal/errs"
	"github.com/andb/andb/internal/expr"
)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	cat := catalog.New()
	cat.Init()
	t.Cleanup(cat.Deinit)
	return driver.New(cat, config.Default())
}

func TestRunScanAndFilter(t *testing.T) {
	d := newDriver(t)
	stmt := &ast.SelectStmt{
		From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
		Selection: []expr.Expr{expr.NewColExpr("a1", "a")},
		Where:     expr.NewBinExpr(expr.Leq, expr.NewColExpr("a1", "a"), expr.NewConst(catalog.NewInt32(1))),
	}

	res, err := d.Run("select a1 from a where a1 <= 1", stmt)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	require.Equal(t, int32(0), res.Rows[0].At(0).Int32())
	require.Equal(t, int32(1), res.Rows[1].At(0).Int32())
}

func TestRunSelectStarExpansion(t *testing.T) {
	d := newDriver(t)
	stmt := &ast.SelectStmt{
		From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
		Selection: []expr.Expr{expr.NewSelStar("")},
	}

	res, err := d.Run("select * from a", stmt)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	require.Equal(t, 4, res.Rows[0].Len())
}

func TestRunConstantArithmetic(t *testing.T) {
	d := newDriver(t)
	stmt := &ast.SelectStmt{
		From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
		Selection: []expr.Expr{expr.NewBinExpr(expr.Add, expr.NewConst(catalog.NewInt32(2)), expr.NewConst(catalog.NewInt32(3)))},
	}

	res, err := d.Run("select 2 + 3 from a", stmt)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	for _, r := range res.Rows {
		require.Equal(t, int32(5), r.At(0).Int32())
	}
}

func TestRunRowDrivenArithmetic(t *testing.T) {
	d := newDriver(t)
	stmt := &ast.SelectStmt{
		From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
		Selection: []expr.Expr{expr.NewBinExpr(expr.Add, expr.NewColExpr("a1", "a"), expr.NewColExpr("a2", "a"))},
	}

	res, err := d.Run("select a1 + a2 from a", stmt)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	require.Equal(t, int32(1), res.Rows[0].At(0).Int32())
	require.Equal(t, int32(3), res.Rows[1].At(0).Int32())
	require.Equal(t, int32(5), res.Rows[2].At(0).Int32())
}

func TestRunNullPropagationOverTableD(t *testing.T) {
	d := newDriver(t)
	stmt := &ast.SelectStmt{
		From:      []ast.TableRef{ast.NewBaseTableRef("d", "")},
		Selection: []expr.Expr{expr.NewBinExpr(expr.Add, expr.NewColExpr("d2", "d"), expr.NewColExpr("d3", "d"))},
	}

	res, err := d.Run("select d2 + d3 from d", stmt)
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)
	require.False(t, res.Rows[0].At(0).IsNull())
	require.True(t, res.Rows[1].At(0).IsNull())
	require.True(t, res.Rows[2].At(0).IsNull())
	require.False(t, res.Rows[3].At(0).IsNull())
}

func TestRunSemanticErrors(t *testing.T) {
	cases := []struct {
		name string
		stmt *ast.SelectStmt
		kind interface{ Is(error) bool }
	}{
		{
			name: "table not found",
			stmt: &ast.SelectStmt{From: []ast.TableRef{ast.NewBaseTableRef("nope", "")}},
			kind: errs.ErrTableNotFound,
		},
		{
			name: "join not implemented",
			stmt: &ast.SelectStmt{From: []ast.TableRef{ast.NewBaseTableRef("a", ""), ast.NewBaseTableRef("b", "")}},
			kind: errs.ErrNotImplemented,
		},
		{
			name: "column not found",
			stmt: &ast.SelectStmt{
				From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
				Selection: []expr.Expr{expr.NewColExpr("nope", "a")},
			},
			kind: errs.ErrColumnNotFound,
		},
		{
			name: "where not boolean",
			stmt: &ast.SelectStmt{
				From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
				Selection: []expr.Expr{expr.NewColExpr("a1", "a")},
				Where:     expr.NewColExpr("a1", "a"),
			},
			kind: errs.ErrNotBoolean,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDriver(t)
			_, err := d.Run("query", tc.stmt)
			require.Error(t, err)
			require.True(t, tc.kind.Is(err))
		})
	}
}

func TestRunExplainOutput(t *testing.T) {
	cat := catalog.New()
	cat.Init()
	defer cat.Deinit()
	cfg := config.Default()
	cfg.Explain = true
	d := driver.New(cat, cfg)

	stmt := &ast.SelectStmt{
		From:      []ast.TableRef{ast.NewBaseTableRef("a", "")},
		Selection: []expr.Expr{expr.NewColExpr("a1", "a")},
	}

	res, err := d.Run("select a1 from a", stmt)
	require.NoError(t, err)
	require.Contains(t, res.Explain, "select a.a1 FROM a")
	require.Contains(t, res.Explain, "Physical Plan")
	require.Contains(t, res.Explain, "PhysicScan")
}

func TestFormatErrorRendersException(t *testing.T) {
	d := newDriver(t)
	stmt := &ast.SelectStmt{From: []ast.TableRef{ast.NewBaseTableRef("nope", "")}}
	_, err := d.Run("select * from nope", stmt)
	require.Error(t, err)

	formatted := driver.FormatError("select * from nope", err)
	require.Contains(t, formatted, "EXCEPTION:")
}

func TestFormatErrorRendersParseFailure(t *testing.T) {
	err := errs.NewParseErr("unexpected token", 1, 7)
	formatted := driver.FormatError("select ???", err)
	require.Equal(t, "FAILED: select ???\nERROR: unexpected token L = 1 C = 7", formatted)
}
