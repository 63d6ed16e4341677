package physical

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/expr"
	"github.com/andb/andb/internal/tree"
)

// PhysicScan reads rows from its table's distribution 0, evaluating an
// optional filter per row (spec.md §4.5).
type PhysicScan struct {
	TableRef *ast.BaseTableRef
	Filter   expr.Expr

	eval *expr.Eval
}

var _ Physical = (*PhysicScan)(nil)

func NewPhysicScan(ref *ast.BaseTableRef, filter expr.Expr) *PhysicScan {
	return &PhysicScan{TableRef: ref, Filter: filter}
}

func (s *PhysicScan) ClassTag() string      { return "PhysicScan" }
func (s *PhysicScan) Children() []tree.Node { return nil }

func (s *PhysicScan) PayloadHash() uint64 {
	name := ""
	if s.TableRef != nil {
		name = s.TableRef.TabName
	}
	return tree.HashLeaf(struct{ Tag, Name string }{"PhysicScan", name})
}

func (s *PhysicScan) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*PhysicScan)
	return ok && s.TableRef.TabName == o.TableRef.TabName
}

func (s *PhysicScan) Clone(children []tree.Node) tree.Node {
	clone := *s
	clone.eval = nil
	return &clone
}

func (s *PhysicScan) Explain() string {
	return "PhysicScan(" + s.TableRef.AliasOrName() + ")"
}

// Open opens the filter's evaluator, if any (spec.md §4.5's Open/Close
// discipline: PhysicScan is a leaf, so there are no children to recurse
// into first).
func (s *PhysicScan) Open() error {
	if s.Filter == nil {
		return nil
	}
	s.eval = expr.NewEval(s.Filter)
	return s.eval.Open()
}

// Exec evaluates the filter (if present) against each row in the source
// heap and, when it is absent or evaluates true, invokes cb with a borrowed
// row pointer. After the last row it invokes cb once with nil to signal
// EOF (spec.md §4.5).
func (s *PhysicScan) Exec(cb RowCallback) error {
	rows := s.TableRef.TabDef.Rows()
	for i := range rows {
		r := rows[i]
		if s.Filter != nil {
			result := s.eval.Exec(&r)
			if result.Type() != catalog.TypeBool || !result.Bool() {
				continue
			}
		}
		if err := cb(&r); err != nil {
			return err
		}
	}
	return cb(nil)
}

// Close releases the filter evaluator's scratch state.
func (s *PhysicScan) Close() error {
	if s.eval != nil {
		s.eval.Close()
	}
	return nil
}
