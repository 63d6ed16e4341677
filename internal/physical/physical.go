// Package physical implements the physical plan and its pull-style,
// push-callback executor (spec.md §4.5): PhysicScan, PhysicHashJoin,
// PhysicAgg, PhysicProject, each exposing Open/Exec/Close, plus the
// direct-lowering optimizer that turns a plan.Logical tree into a Physical
// one.
//
// Grounded on the teacher's sql/plan/filter_test.go and friends for the
// Open-then-iterate idiom (there RowIter.Next(ctx); here a caller-supplied
// callback in place of a pull iterator, per spec.md §4.5's "callback
// producer").
package physical

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// RowCallback receives each produced row; a nil row signals EOF for that
// operator (spec.md §4.5's PhysicScan contract, which every operator
// upholds uniformly).
type RowCallback func(row *catalog.Row) error

// Physical is the capability set every physical node implements, on top of
// tree.Node's shared traversal/hash/clone/equals contract.
type Physical interface {
	tree.Node

	// Open recurses to children first, then prepares local state. Must be
	// called before Exec.
	Open() error
	// Exec drives rows through cb until EOF (a nil-row callback
	// invocation), or returns early on the first error from cb or from the
	// operator's own evaluation.
	Exec(cb RowCallback) error
	// Close mirrors Open in reverse and is always safe to call, including
	// after a failed Open or a failed Exec.
	Close() error
}
