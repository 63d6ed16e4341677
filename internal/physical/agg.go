package physical

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// PhysicAgg consumes all child rows and accumulates a running Int32 sum of
// the first column, emitting exactly one summary row after EOF (spec.md
// §4.5, §8.1 invariant 8). An empty input stream still emits one row with
// value 0.
type PhysicAgg struct {
	Child Physical
}

var _ Physical = (*PhysicAgg)(nil)

func NewPhysicAgg(child Physical) *PhysicAgg {
	return &PhysicAgg{Child: child}
}

func (a *PhysicAgg) ClassTag() string      { return "PhysicAgg" }
func (a *PhysicAgg) Children() []tree.Node { return []tree.Node{a.Child} }

func (a *PhysicAgg) PayloadHash() uint64 {
	return tree.HashLeaf(struct{ Tag string }{"PhysicAgg"})
}

func (a *PhysicAgg) PayloadEquals(other tree.Node) bool {
	_, ok := other.(*PhysicAgg)
	return ok
}

func (a *PhysicAgg) Clone(children []tree.Node) tree.Node {
	clone := *a
	clone.Child = children[0].(Physical)
	return &clone
}

func (a *PhysicAgg) Explain() string { return "PhysicAgg" }

func (a *PhysicAgg) Open() error {
	return a.Child.Open()
}

func (a *PhysicAgg) Exec(cb RowCallback) error {
	var sum int32
	err := a.Child.Exec(func(row *catalog.Row) error {
		if row == nil {
			return nil
		}
		if row.Len() == 0 {
			return nil
		}
		sum += row.At(0).Int32()
		return nil
	})
	if err != nil {
		return err
	}

	result := catalog.NewRow(catalog.NewInt32(sum))
	if err := cb(&result); err != nil {
		return err
	}
	return cb(nil)
}

func (a *PhysicAgg) Close() error {
	return a.Child.Close()
}
