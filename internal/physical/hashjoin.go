package physical

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// PhysicHashJoin is a one-pass equi-hash-join keyed on the leading column of
// each row (spec.md §4.5, §9 OQ2 — a present limitation, not a full
// equality-predicate join). Build consumes the left child fully into a
// hash map keyed by left[0] as Int32; Probe streams the right child and,
// for every right[0] match, replays every matching build row to cb, in
// build-insertion order within a bucket and in probe-side iteration order
// across buckets (spec.md §5's ordering guarantees).
type PhysicHashJoin struct {
	Left, Right Physical

	buildMap map[int32][]catalog.Row
}

var _ Physical = (*PhysicHashJoin)(nil)

func NewPhysicHashJoin(left, right Physical) *PhysicHashJoin {
	return &PhysicHashJoin{Left: left, Right: right}
}

func (j *PhysicHashJoin) ClassTag() string { return "PhysicHashJoin" }

func (j *PhysicHashJoin) Children() []tree.Node {
	return []tree.Node{j.Left, j.Right}
}

func (j *PhysicHashJoin) PayloadHash() uint64 {
	return tree.HashLeaf(struct{ Tag string }{"PhysicHashJoin"})
}

func (j *PhysicHashJoin) PayloadEquals(other tree.Node) bool {
	_, ok := other.(*PhysicHashJoin)
	return ok
}

func (j *PhysicHashJoin) Clone(children []tree.Node) tree.Node {
	clone := *j
	clone.Left = children[0].(Physical)
	clone.Right = children[1].(Physical)
	clone.buildMap = nil
	return &clone
}

func (j *PhysicHashJoin) Explain() string { return "PhysicHashJoin" }

// Open recurses to children first (child 0, then child 1), per spec.md
// §4.5's deterministic child traversal order.
func (j *PhysicHashJoin) Open() error {
	if err := j.Left.Open(); err != nil {
		return err
	}
	if err := j.Right.Open(); err != nil {
		return err
	}
	return nil
}

// Exec builds the left side into buildMap, then probes with the right side,
// invoking cb for every match, and finally signals EOF with a nil row.
func (j *PhysicHashJoin) Exec(cb RowCallback) error {
	j.buildMap = make(map[int32][]catalog.Row)

	buildErr := j.Left.Exec(func(row *catalog.Row) error {
		if row == nil {
			return nil
		}
		if row.Len() == 0 {
			return nil
		}
		key := row.At(0).Int32()
		j.buildMap[key] = append(j.buildMap[key], row.Clone())
		return nil
	})
	if buildErr != nil {
		return buildErr
	}

	probeErr := j.Right.Exec(func(row *catalog.Row) error {
		if row == nil {
			return nil
		}
		if row.Len() == 0 {
			return nil
		}
		key := row.At(0).Int32()
		for _, build := range j.buildMap[key] {
			b := build
			if err := cb(&b); err != nil {
				return err
			}
		}
		return nil
	})
	if probeErr != nil {
		return probeErr
	}

	return cb(nil)
}

// Close mirrors Open in reverse and releases the build map.
func (j *PhysicHashJoin) Close() error {
	j.buildMap = nil
	if err := j.Right.Close(); err != nil {
		return err
	}
	return j.Left.Close()
}
