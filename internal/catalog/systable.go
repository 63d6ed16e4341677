package catalog

import (
	"strconv"
	"sync"

	"github.com/andb/andb/internal/errs"
)

// SysTable is the process-wide map of case-insensitive table name to
// TableDef. Mutation is not safe under concurrent access (spec.md §3.4/§5);
// callers are expected to serialize CreateTable/DropAllTables/InsertRows
// against any concurrent readers themselves.
type SysTable struct {
	mu     sync.Mutex
	tables map[string]*TableDef
}

// SysStats is a placeholder reserved for future statistics (spec.md §3.4);
// the core never populates it.
type SysStats struct{}

// Catalog bundles SysTable and SysStats the way the spec's process-wide
// catalog does.
type Catalog struct {
	Sys   *SysTable
	Stats *SysStats
}

// New builds an empty, uninitialized Catalog. Call Init to seed the
// built-in test fixtures (spec.md §3.5).
func New() *Catalog {
	return &Catalog{
		Sys:   &SysTable{tables: make(map[string]*TableDef)},
		Stats: &SysStats{},
	}
}

// CreateTable registers a new TableDef; fails with ErrDuplicateTable when the
// name is already present (case-insensitive).
func (s *SysTable) CreateTable(name string, colNames []string, colTypes []SQLType) (*TableDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalize(name)
	if _, exists := s.tables[key]; exists {
		return nil, errs.ErrDuplicateTable.New(name)
	}
	td, err := NewTableDef(name, colNames, colTypes)
	if err != nil {
		return nil, err
	}
	s.tables[key] = td
	return td, nil
}

// TryTable looks up a TableDef by case-insensitive name, trimmed of
// surrounding whitespace (spec.md §8.1 invariant 1).
func (s *SysTable) TryTable(name string) (*TableDef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	td, ok := s.tables[normalize(name)]
	return td, ok
}

// Column looks up a ColumnDef by (column name, table name), case-insensitive.
func (s *SysTable) Column(colName, tblName string) (ColumnDef, bool) {
	td, ok := s.TryTable(tblName)
	if !ok {
		return ColumnDef{}, false
	}
	return td.Column(colName)
}

// DropAllTables removes and releases every TableDef.
func (s *SysTable) DropAllTables() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = make(map[string]*TableDef)
}

// Deinit calls DropAllTables; the pair Init/Deinit brackets a catalog's
// lifetime, mirroring spec.md §3.4.
func (c *Catalog) Deinit() {
	c.Sys.DropAllTables()
}

// Init populates the deterministic seed fixtures spec.md §3.5 requires:
// 30 single-column optimizer-test tables t0..t29, and four built-in tables
// a/b/c/d with four Integer columns each and the exact row values the test
// suite (§8.3) depends on.
func (c *Catalog) Init() {
	for i := 0; i < 30; i++ {
		name := "t" + strconv.Itoa(i)
		_, _ = c.Sys.CreateTable(name, []string{"i"}, []SQLType{Integer})
	}

	for _, tbl := range []string{"a", "b", "c", "d"} {
		cols := make([]string, 4)
		types := make([]SQLType, 4)
		for j := 0; j < 4; j++ {
			cols[j] = tbl + strconv.Itoa(j+1)
			types[j] = Integer
		}
		td, _ := c.Sys.CreateTable(tbl, cols, types)
		td.InsertRows(seedRows(tbl)...)
	}
}

func seedRows(tbl string) []Row {
	mk := func(v0, v1, v2, v3 int32) Row {
		return NewRow(NewInt32(v0), NewInt32(v1), NewInt32(v2), NewInt32(v3))
	}
	switch tbl {
	case "a", "b", "c":
		return []Row{
			mk(0, 1, 2, 3),
			mk(1, 2, 3, 4),
			mk(2, 3, 4, 5),
		}
	case "d":
		return []Row{
			NewRow(NewInt32(0), NewInt32(1), NewInt32(2), NewInt32(3)),
			NewRow(NewInt32(1), NewInt32(2), NullDatum, NewInt32(4)),
			NewRow(NewInt32(2), NewInt32(2), NullDatum, NewInt32(5)),
			NewRow(NewInt32(3), NewInt32(3), NewInt32(5), NewInt32(6)),
		}
	default:
		return nil
	}
}

