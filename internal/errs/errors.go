// Package errs declares the closed set of error kinds the core can raise.
//
// Each kind is a gopkg.in/src-d/go-errors.v1 Kind, the same pattern the
// teacher uses for its SQL error taxonomy (sql.ErrTableNotFound and
// friends): a Kind is a reusable error template, instantiated per
// occurrence with .New(args...), and matched at a boundary with .Is(err).
package errs

import (
	errorkind "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrTableNotFound is raised when a FROM/column reference names a table
	// absent from every scope and from the catalog.
	ErrTableNotFound = errorkind.NewKind("table not found: %s")

	// ErrDuplicateTable is raised by Catalog.CreateTable when the name is
	// already registered.
	ErrDuplicateTable = errorkind.NewKind("table already exists: %s")

	// ErrDuplicateAlias is raised when two FROM entries bind the same alias.
	ErrDuplicateAlias = errorkind.NewKind("duplicate table alias: %s")

	// ErrColumnNotFound is raised when a column reference cannot be resolved
	// against any table in scope.
	ErrColumnNotFound = errorkind.NewKind("column not found: %s")

	// ErrDuplicateColumn is raised when a TableDef is built with two columns
	// that collide under case-insensitive comparison.
	ErrDuplicateColumn = errorkind.NewKind("duplicate column: %s")

	// ErrUnsupportedType is raised when a ColExpr binds to a SQL type with
	// no Datum tag mapping.
	ErrUnsupportedType = errorkind.NewKind("unsupported type for column %s: %v")

	// ErrNotBoolean is raised when a WHERE expression does not type to Bool.
	ErrNotBoolean = errorkind.NewKind("WHERE clause did not evaluate to a boolean expression")

	// ErrNotImplemented is raised for structurally accepted but unsupported
	// shapes: multi-table FROM, WHERE attached to a non-scan plan root, a
	// subquery in FROM, an unknown logical node during lowering.
	ErrNotImplemented = errorkind.NewKind("not implemented: %s")

	// ErrSemantic is raised when BinExpr operator dispatch finds no entry
	// for (op, left type, right type).
	ErrSemantic = errorkind.NewKind("semantic error: no implementation for %s(%s, %s)")

	// ErrRuntime is reserved for evaluation-time failures.
	ErrRuntime = errorkind.NewKind("runtime error: %s")

	// ErrParse is raised by the (out-of-scope) parser; declared here so the
	// driver's error boundary can format it uniformly with the rest.
	ErrParse = errorkind.NewKind("parse error: %s")
)

// ParseErr carries the line/column the out-of-scope parser attaches to a
// syntax failure, per spec.md §7's "FAILED: <query>" / "ERROR: <msg> L = <line>
// C = <col>" driver formatting.
type ParseErr struct {
	Msg  string
	Line int
	Col  int
}

func (e *ParseErr) Error() string { return e.Msg }

// NewParseErr wraps a ParseErr in ErrParse so callers can still match it with
// ErrParse.Is at the driver boundary.
func NewParseErr(msg string, line, col int) error {
	return ErrParse.Wrap(&ParseErr{Msg: msg, Line: line, Col: col}, msg)
}
