package physical

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/expr"
	"github.com/andb/andb/internal/tree"
)

// PhysicProject evaluates Selections against every row its Child yields,
// assembling the narrower output row the SELECT list asks for (spec.md
// §4.5: a scan emits full-width source rows; projection is the caller's
// job). One *expr.Eval per selection is opened alongside the child, so
// Exec performs no per-row allocation beyond the freshly assembled output
// row itself.
type PhysicProject struct {
	Child      Physical
	Selections []expr.Expr

	evals []*expr.Eval
}

var _ Physical = (*PhysicProject)(nil)

func NewPhysicProject(child Physical, selections []expr.Expr) *PhysicProject {
	return &PhysicProject{Child: child, Selections: selections}
}

func (p *PhysicProject) ClassTag() string      { return "PhysicProject" }
func (p *PhysicProject) Children() []tree.Node { return []tree.Node{p.Child} }

func (p *PhysicProject) PayloadHash() uint64 {
	return tree.HashLeaf(struct {
		Tag string
		Cnt int
	}{"PhysicProject", len(p.Selections)})
}

func (p *PhysicProject) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*PhysicProject)
	return ok && len(p.Selections) == len(o.Selections)
}

func (p *PhysicProject) Clone(children []tree.Node) tree.Node {
	clone := *p
	clone.Child = children[0].(Physical)
	clone.evals = nil
	return &clone
}

func (p *PhysicProject) Explain() string { return "PhysicProject" }

// Open opens Child first, then an *expr.Eval per selection (spec.md §4.5's
// "Open recurses to children first" discipline).
func (p *PhysicProject) Open() error {
	if err := p.Child.Open(); err != nil {
		return err
	}
	p.evals = make([]*expr.Eval, len(p.Selections))
	for i, sel := range p.Selections {
		ev := expr.NewEval(sel)
		if err := ev.Open(); err != nil {
			return err
		}
		p.evals[i] = ev
	}
	return nil
}

// Exec drains Child and, for every row, evaluates each selection against it
// into a fresh len(Selections)-wide row, forwarding that projected row to
// cb. The nil-row EOF signal passes straight through.
func (p *PhysicProject) Exec(cb RowCallback) error {
	return p.Child.Exec(func(row *catalog.Row) error {
		if row == nil {
			return cb(nil)
		}
		out := catalog.NewRowOfLen(len(p.evals))
		for i, ev := range p.evals {
			out.Set(i, ev.Exec(row))
		}
		return cb(&out)
	})
}

// Close releases the selection evaluators, then Child, mirroring Open in
// reverse.
func (p *PhysicProject) Close() error {
	for _, ev := range p.evals {
		if ev != nil {
			ev.Close()
		}
	}
	p.evals = nil
	return p.Child.Close()
}
