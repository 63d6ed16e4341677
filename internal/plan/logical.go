// Package plan implements the logical plan tree (spec.md §4.4): LogicScan
// (with pushed filter), LogicJoin, LogicAgg, and LogicProject (the SELECT
// list), plus SelectStmt.CreatePlan's direct construction of that tree from
// a bound statement.
//
// Grounded on the teacher's sql/plan test files (plan.NewFilter,
// NewResolvedTable shape) for the "node wraps a child plus its own payload"
// idiom, generalized onto the tree.Node abstraction rather than Go
// interfaces-per-operator the teacher's newer tree (sql/plan, sql/rowexec)
// would have used had its source been present in the retrieval pack.
package plan

import (
	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/expr"
	"github.com/andb/andb/internal/tree"
)

// Logical is the capability set every logical plan node implements.
type Logical interface {
	tree.Node
}

// LogicScan is a leaf scanning one base table, with an optional pushed-down
// filter (spec.md §4.4).
type LogicScan struct {
	TableRef *ast.BaseTableRef
	Filter   expr.Expr
}

var _ Logical = (*LogicScan)(nil)

// NewLogicScan builds a scan over ref with no filter attached yet.
func NewLogicScan(ref *ast.BaseTableRef) *LogicScan {
	return &LogicScan{TableRef: ref}
}

// AddFilter attaches a WHERE predicate to the scan (spec.md §4.4).
func (s *LogicScan) AddFilter(e expr.Expr) { s.Filter = e }

func (s *LogicScan) ClassTag() string      { return "LogicScan" }
func (s *LogicScan) Children() []tree.Node { return nil }

func (s *LogicScan) PayloadHash() uint64 {
	name := ""
	if s.TableRef != nil {
		name = s.TableRef.TabName
	}
	return tree.HashLeaf(struct{ Tag, Name string }{"LogicScan", name})
}

func (s *LogicScan) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*LogicScan)
	if !ok {
		return false
	}
	if (s.TableRef == nil) != (o.TableRef == nil) {
		return false
	}
	if s.TableRef == nil {
		return true
	}
	return s.TableRef.TabName == o.TableRef.TabName && s.TableRef.AliasOrName() == o.TableRef.AliasOrName()
}

func (s *LogicScan) Clone(children []tree.Node) tree.Node {
	clone := *s
	return &clone
}

func (s *LogicScan) Explain() string {
	if s.TableRef == nil {
		return "LogicScan"
	}
	return "LogicScan(" + s.TableRef.AliasOrName() + ")"
}

// LogicJoin is a binary node, constructed directly in tests and by
// CreatePlan's left-deep fold for a multi-table FROM — the binder refuses a
// multi-table FROM, so bound user SQL never reaches it (spec.md §4.4,
// SPEC_FULL.md §D.1).
type LogicJoin struct {
	Left, Right Logical
}

var _ Logical = (*LogicJoin)(nil)

func NewLogicJoin(left, right Logical) *LogicJoin {
	return &LogicJoin{Left: left, Right: right}
}

func (j *LogicJoin) ClassTag() string { return "LogicJoin" }

func (j *LogicJoin) Children() []tree.Node {
	return []tree.Node{j.Left, j.Right}
}

func (j *LogicJoin) PayloadHash() uint64 {
	return tree.HashLeaf(struct{ Tag string }{"LogicJoin"})
}

func (j *LogicJoin) PayloadEquals(other tree.Node) bool {
	_, ok := other.(*LogicJoin)
	return ok
}

func (j *LogicJoin) Clone(children []tree.Node) tree.Node {
	clone := *j
	clone.Left = children[0].(Logical)
	clone.Right = children[1].(Logical)
	return &clone
}

func (j *LogicJoin) Explain() string { return "LogicJoin" }

// LogicAgg is a unary node representing the single-output SUM aggregate
// (spec.md §4.5).
type LogicAgg struct {
	Child Logical
}

var _ Logical = (*LogicAgg)(nil)

func NewLogicAgg(child Logical) *LogicAgg {
	return &LogicAgg{Child: child}
}

func (a *LogicAgg) ClassTag() string      { return "LogicAgg" }
func (a *LogicAgg) Children() []tree.Node { return []tree.Node{a.Child} }

func (a *LogicAgg) PayloadHash() uint64 {
	return tree.HashLeaf(struct{ Tag string }{"LogicAgg"})
}

func (a *LogicAgg) PayloadEquals(other tree.Node) bool {
	_, ok := other.(*LogicAgg)
	return ok
}

func (a *LogicAgg) Clone(children []tree.Node) tree.Node {
	clone := *a
	clone.Child = children[0].(Logical)
	return &clone
}

func (a *LogicAgg) Explain() string { return "LogicAgg" }

// LogicProject is a unary node evaluating Selections against every row its
// Child yields, narrowing each to the projected output row (spec.md §4.4's
// SELECT-list clause, executed per §4.5's "scan emits source rows, the
// caller projects" contract). TargetCnt is the projection's output arity
// (len(Selections)) — the natural home for the projected column count,
// since LogicScan itself always emits full-width source rows regardless of
// the SELECT list.
type LogicProject struct {
	Child      Logical
	Selections []expr.Expr
	TargetCnt  int
}

var _ Logical = (*LogicProject)(nil)

// NewLogicProject builds a projection of selections over child.
func NewLogicProject(child Logical, selections []expr.Expr) *LogicProject {
	return &LogicProject{Child: child, Selections: selections, TargetCnt: len(selections)}
}

func (p *LogicProject) ClassTag() string      { return "LogicProject" }
func (p *LogicProject) Children() []tree.Node { return []tree.Node{p.Child} }

func (p *LogicProject) PayloadHash() uint64 {
	return tree.HashLeaf(struct {
		Tag string
		Cnt int
	}{"LogicProject", p.TargetCnt})
}

func (p *LogicProject) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*LogicProject)
	return ok && p.TargetCnt == o.TargetCnt
}

func (p *LogicProject) Clone(children []tree.Node) tree.Node {
	clone := *p
	clone.Child = children[0].(Logical)
	return &clone
}

func (p *LogicProject) Explain() string { return "LogicProject" }
