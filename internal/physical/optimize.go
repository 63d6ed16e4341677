package physical

import (
	"github.com/andb/andb/internal/errs"
	"github.com/andb/andb/internal/plan"
)

// OptLevel names the optimizer levels spec.md §4.5 declares; only a direct
// lowering exists regardless of level, matching the spec's "O0|O1|O2|
// Ocustomized are declared, but only a direct lowering exists".
type OptLevel int

const (
	O0 OptLevel = iota
	O1
	O2
	Ocustomized
)

// Optimize constructs the physical node matching each logical node,
// recursing into children; an unknown logical class tag is a programming
// error (a new Logical variant was added without a matching case here), not
// a user-facing one, so it is reported via ErrNotImplemented rather than a
// panic — the spec's "fatal assertion" becomes a returned error in this
// idiom.
func Optimize(l plan.Logical) (Physical, error) {
	if l == nil {
		return nil, nil
	}

	switch n := l.(type) {
	case *plan.LogicScan:
		return NewPhysicScan(n.TableRef, n.Filter), nil

	case *plan.LogicJoin:
		left, err := Optimize(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Optimize(n.Right)
		if err != nil {
			return nil, err
		}
		return NewPhysicHashJoin(left, right), nil

	case *plan.LogicAgg:
		child, err := Optimize(n.Child)
		if err != nil {
			return nil, err
		}
		return NewPhysicAgg(child), nil

	case *plan.LogicProject:
		child, err := Optimize(n.Child)
		if err != nil {
			return nil, err
		}
		return NewPhysicProject(child, n.Selections), nil

	default:
		return nil, errs.ErrNotImplemented.New("unknown logical node")
	}
}
