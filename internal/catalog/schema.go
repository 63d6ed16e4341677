package catalog

import (
	"math"
	"strings"

	"github.com/andb/andb/internal/errs"
)

// SQLType is the declared SQL type of a column, distinct from the runtime
// DataType tag a bound expression carries (spec.md §3.3/§4.2).
type SQLType uint8

const (
	Integer SQLType = iota
	Long
	Numeric
	Double
	Bool
	DateTime
	Varchar
	Char
)

// unknownLen is the sentinel spec.md §3.3 calls out for character types
// whose byte length is not fixed (INT_MAX in the original).
const unknownLen = math.MaxInt32

// ByteLen returns the SQL type's fixed byte length for row-size estimation,
// or unknownLen for character types.
func (t SQLType) ByteLen() int {
	switch t {
	case Integer:
		return 4
	case Long:
		return 8
	case Numeric, Double:
		return 8
	case Bool:
		return 1
	case DateTime:
		return 8
	case Varchar, Char:
		return unknownLen
	default:
		return unknownLen
	}
}

// DatumType maps a SQL type to the DataType a bound ColExpr evaluates to,
// per spec.md §4.2's ColExpr binding table. Returns ok=false for SQL types
// the evaluator does not represent (Numeric, DateTime, Varchar).
func (t SQLType) DatumType() (DataType, bool) {
	switch t {
	case Integer:
		return TypeInt32, true
	case Long:
		return TypeInt64, true
	case Bool:
		return TypeBool, true
	case Double:
		return TypeDouble, true
	case Char:
		return TypeString, true
	default:
		return TypeNull, false
	}
}

// ColumnDef describes one column of a TableDef.
type ColumnDef struct {
	Name     string
	Type     SQLType
	Ordinal  int
	Nullable bool
	ColumnID int
	Quoted   bool
}

// NewColumnDef builds a ColumnDef with ColumnID unassigned (-1) and
// Nullable defaulted true, matching spec.md §3.3.
func NewColumnDef(name string, t SQLType, ordinal int) ColumnDef {
	return ColumnDef{Name: name, Type: t, Ordinal: ordinal, Nullable: true, ColumnID: -1}
}

// Source distinguishes a TableDef's underlying storage kind.
type Source int

const (
	SourceTable Source = iota
	SourceStream
)

// DistributionMethod mirrors spec.md §3.3; only NonDistributed is exercised
// by the executor (no network distribution in this core), the rest are
// schema-level attributes reserved for a future revision.
type DistributionMethod int

const (
	NonDistributed DistributionMethod = iota
	Distributed
	Replicated
	RoundRobin
)

// Distribution owns the row storage (heap) for one shard of a table.
type Distribution struct {
	heap []Row
}

// Heap returns the distribution's row storage in insertion order. The
// returned slice is borrowed; callers must not retain it past a mutation.
func (d *Distribution) Heap() []Row { return d.heap }

func (d *Distribution) append(r Row) { d.heap = append(d.heap, r.Clone()) }

// TableDef is the catalog's schema entry for one table.
type TableDef struct {
	Name               string
	TableID            int
	Source             Source
	DistributionMethod DistributionMethod
	Distributions      []*Distribution

	colsByOrdinal []ColumnDef
	colsByName    map[string]*ColumnDef
}

// NewTableDef builds a TableDef from columns in declaration order, assigning
// ordinals 0..n-1 and rejecting a name collision under case-insensitive
// comparison with errs.ErrDuplicateColumn (original_source's catalog.cpp
// behavior; see SPEC_FULL.md §C.4).
func NewTableDef(name string, colNames []string, colTypes []SQLType) (*TableDef, error) {
	td := &TableDef{
		Name:               name,
		TableID:            -1,
		Source:             SourceTable,
		DistributionMethod: NonDistributed,
		Distributions:      []*Distribution{{}},
		colsByName:         make(map[string]*ColumnDef, len(colNames)),
	}
	for i, cn := range colNames {
		key := normalize(cn)
		if _, dup := td.colsByName[key]; dup {
			return nil, errs.ErrDuplicateColumn.New(cn)
		}
		cd := NewColumnDef(cn, colTypes[i], i)
		td.colsByOrdinal = append(td.colsByOrdinal, cd)
		td.colsByName[key] = &td.colsByOrdinal[len(td.colsByOrdinal)-1]
	}
	return td, nil
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Column looks up a column by case-insensitive name.
func (t *TableDef) Column(name string) (ColumnDef, bool) {
	cd, ok := t.colsByName[normalize(name)]
	if !ok {
		return ColumnDef{}, false
	}
	return *cd, true
}

// ColumnsInOrder returns columns sorted ascending by ordinal (spec.md §3.3
// invariant 2): since colsByOrdinal is built in declaration order and
// ordinals are assigned 0..n-1 in that same order, it already satisfies the
// invariant; this accessor documents the contract for callers.
func (t *TableDef) ColumnsInOrder() []ColumnDef {
	out := make([]ColumnDef, len(t.colsByOrdinal))
	copy(out, t.colsByOrdinal)
	return out
}

// EstRowSize sums positive per-column lengths; unknown-length columns
// contribute 0 (spec.md §3.3).
func (t *TableDef) EstRowSize() int {
	total := 0
	for _, c := range t.colsByOrdinal {
		if l := c.Type.ByteLen(); l > 0 && l != unknownLen {
			total += l
		}
	}
	return total
}

// InsertRows appends deep copies of rows to distribution 0's heap, the only
// mutation path TableDef storage exposes post-creation (spec.md §3.3).
func (t *TableDef) InsertRows(rows ...Row) {
	for _, r := range rows {
		t.Distributions[0].append(r)
	}
}

// Rows returns distribution 0's heap in insertion order.
func (t *TableDef) Rows() []Row {
	return t.Distributions[0].Heap()
}
