package physical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/expr"
	"github.com/andb/andb/internal/physical"
	"github.com/andb/andb/internal/plan"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	cat.Init()
	t.Cleanup(cat.Deinit)
	return cat
}

func drain(t *testing.T, p physical.Physical) []catalog.Row {
	t.Helper()
	require.NoError(t, p.Open())
	defer func() { require.NoError(t, p.Close()) }()

	var rows []catalog.Row
	err := p.Exec(func(row *catalog.Row) error {
		if row == nil {
			return nil
		}
		rows = append(rows, row.Clone())
		return nil
	})
	require.NoError(t, err)
	return rows
}

func baseRef(t *testing.T, cat *catalog.Catalog, name string) *ast.BaseTableRef {
	t.Helper()
	td, ok := cat.Sys.TryTable(name)
	require.True(t, ok)
	ref := ast.NewBaseTableRef(name, "")
	ref.TabDef = td
	return ref
}

func TestPhysicScanNoFilterReturnsAllRows(t *testing.T) {
	cat := newCatalog(t)
	scan := physical.NewPhysicScan(baseRef(t, cat, "a"), nil)
	rows := drain(t, scan)
	require.Len(t, rows, 3)
}

func TestPhysicScanFilterSemantics(t *testing.T) {
	cat := newCatalog(t)
	col := expr.NewColExpr("a1", "a")
	col.Ordinal = 0
	col.SetType(catalog.TypeInt32)
	filter := expr.NewBinExpr(expr.Leq, col, expr.NewConst(catalog.NewInt32(1)))
	require.NoError(t, filter.Bind())

	scan := physical.NewPhysicScan(baseRef(t, cat, "a"), filter)
	rows := drain(t, scan)
	require.Len(t, rows, 2)
	require.Equal(t, int32(0), rows[0].At(0).Int32())
	require.Equal(t, int32(1), rows[1].At(0).Int32())
}

func TestPhysicAggEmptyInputEmitsOneZeroRow(t *testing.T) {
	cat := newCatalog(t)
	col := expr.NewColExpr("a1", "a")
	col.Ordinal = 0
	col.SetType(catalog.TypeInt32)
	alwaysFalse := expr.NewBinExpr(expr.Equal, col, expr.NewConst(catalog.NewInt32(-1)))
	require.NoError(t, alwaysFalse.Bind())

	scan := physical.NewPhysicScan(baseRef(t, cat, "a"), alwaysFalse)
	agg := physical.NewPhysicAgg(scan)

	rows := drain(t, agg)
	require.Len(t, rows, 1)
	require.Equal(t, int32(0), rows[0].At(0).Int32())
}

func TestPhysicAggSumsFirstColumn(t *testing.T) {
	cat := newCatalog(t)
	scan := physical.NewPhysicScan(baseRef(t, cat, "a"), nil)
	agg := physical.NewPhysicAgg(scan)

	rows := drain(t, agg)
	require.Len(t, rows, 1)
	require.Equal(t, int32(0+1+2), rows[0].At(0).Int32())
}

func TestPhysicHashJoinMultisetSemantics(t *testing.T) {
	cat := newCatalog(t)
	left := physical.NewPhysicScan(baseRef(t, cat, "a"), nil)
	right := physical.NewPhysicScan(baseRef(t, cat, "b"), nil)
	join := physical.NewPhysicHashJoin(left, right)

	rows := drain(t, join)
	// a and b share leading-column values {0,1,2}, one row each -> 3 matches.
	require.Len(t, rows, 3)
}

func TestPhysicProjectNarrowsToSelectedColumns(t *testing.T) {
	cat := newCatalog(t)
	scan := physical.NewPhysicScan(baseRef(t, cat, "d"), nil)

	d1 := expr.NewColExpr("d1", "d")
	d1.Ordinal = 0
	d1.SetType(catalog.TypeInt32)
	d3 := expr.NewColExpr("d3", "d")
	d3.Ordinal = 2
	d3.SetType(catalog.TypeInt32)

	project := physical.NewPhysicProject(scan, []expr.Expr{d1, d3})
	rows := drain(t, project)

	require.Len(t, rows, 4)
	for _, r := range rows {
		require.Equal(t, 2, r.Len())
	}
	require.Equal(t, int32(0), rows[0].At(0).Int32())
	require.Equal(t, int32(2), rows[0].At(1).Int32())
	require.Equal(t, int32(1), rows[1].At(0).Int32())
	require.True(t, rows[1].At(1).IsNull())
	require.Equal(t, int32(2), rows[2].At(0).Int32())
	require.True(t, rows[2].At(1).IsNull())
	require.Equal(t, int32(3), rows[3].At(0).Int32())
	require.Equal(t, int32(5), rows[3].At(1).Int32())
}

func TestPhysicProjectEvaluatesExpressionPerRow(t *testing.T) {
	cat := newCatalog(t)
	scan := physical.NewPhysicScan(baseRef(t, cat, "a"), nil)

	a1 := expr.NewColExpr("a1", "a")
	a1.Ordinal = 0
	a1.SetType(catalog.TypeInt32)
	a2 := expr.NewColExpr("a2", "a")
	a2.Ordinal = 1
	a2.SetType(catalog.TypeInt32)
	sum := expr.NewBinExpr(expr.Add, a1, a2)
	require.NoError(t, sum.Bind())

	project := physical.NewPhysicProject(scan, []expr.Expr{sum})
	rows := drain(t, project)

	require.Len(t, rows, 3)
	require.Equal(t, int32(1), rows[0].At(0).Int32())
	require.Equal(t, int32(3), rows[1].At(0).Int32())
	require.Equal(t, int32(5), rows[2].At(0).Int32())
}

func TestOptimizeLowersLogicProjectToPhysicProject(t *testing.T) {
	cat := newCatalog(t)
	ref := baseRef(t, cat, "a")
	logical := plan.NewLogicProject(plan.NewLogicScan(ref), []expr.Expr{expr.NewColExpr("a1", "a")})

	phys, err := physical.Optimize(logical)
	require.NoError(t, err)

	proj, ok := phys.(*physical.PhysicProject)
	require.True(t, ok)
	_, ok = proj.Child.(*physical.PhysicScan)
	require.True(t, ok)
}

func TestOptimizeLowersLogicalTreeToPhysical(t *testing.T) {
	cat := newCatalog(t)
	ref := baseRef(t, cat, "a")
	logical := plan.NewLogicScan(ref)

	phys, err := physical.Optimize(logical)
	require.NoError(t, err)

	_, ok := phys.(*physical.PhysicScan)
	require.True(t, ok)
}

func TestOptimizeNilPlanYieldsNilPhysical(t *testing.T) {
	phys, err := physical.Optimize(nil)
	require.NoError(t, err)
	require.Nil(t, phys)
}
