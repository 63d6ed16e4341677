package expr

import (
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/tree"
)

// Eval is the Open/Exec/Close runtime for a bound expression tree
// (spec.md §4.3). Open assigns slots and builds the post-order execution
// queue once; Exec may be called many times against different rows with no
// per-call heap allocation; Close releases the scratch arrays.
type Eval struct {
	root   Expr
	board  []catalog.Datum
	ptr    []*catalog.Datum
	queue  []Expr
	opened bool
}

// NewEval builds an unopened evaluator for root.
func NewEval(root Expr) *Eval {
	return &Eval{root: root}
}

// Open allocates evaluation state so Exec performs no heap work: a pre-order
// walk assigns slot = parent.slot + nth (0 for the root), a post-order walk
// collects nodes into queue, and two parallel scratch arrays of length
// max_slot+1 are allocated (spec.md §4.3 step 1-3).
func (e *Eval) Open() error {
	maxSlot := 0
	tree.WalkWithParent(e.root, func(parent tree.Node, depth, nth int, node tree.Node) {
		ex := node.(Expr)
		if nth == -1 {
			ex.SetSlot(0)
		} else {
			ex.SetSlot(parent.(Expr).Slot() + nth)
		}
		if ex.Slot() > maxSlot {
			maxSlot = ex.Slot()
		}
	})

	e.board = make([]catalog.Datum, maxSlot+1)
	e.ptr = make([]*catalog.Datum, maxSlot+1)
	for i := range e.ptr {
		e.ptr[i] = &e.board[i]
	}

	e.queue = e.queue[:0]
	tree.WalkPostOrder(e.root, func(n tree.Node) bool {
		e.queue = append(e.queue, n.(Expr))
		return true
	})

	e.opened = true
	return nil
}

// Exec evaluates the bound tree against row (nil for a row-independent
// expression such as a pure-constant arithmetic tree) and returns the
// result. No allocation occurs here; everything was pre-sized in Open.
func (e *Eval) Exec(row *catalog.Row) catalog.Datum {
	for _, node := range e.queue {
		slot := node.Slot()
		switch n := node.(type) {
		case *BinExpr:
			l := *e.ptr[n.Left.Slot()]
			r := *e.ptr[n.Right.Slot()]
			e.board[slot] = n.Eval(l, r)
			e.ptr[slot] = &e.board[slot]
		case *ConstExpr:
			e.ptr[slot] = &n.Value
		case *ColExpr:
			if row == nil {
				e.board[slot] = catalog.NullDatum
				e.ptr[slot] = &e.board[slot]
			} else {
				e.ptr[slot] = row.PtrAt(int(n.Ordinal))
			}
		case *SelStar:
			e.board[slot] = catalog.NullDatum
			e.ptr[slot] = &e.board[slot]
		}
	}
	return *e.ptr[e.root.Slot()]
}

// Close releases the evaluator's scratch state. Safe to call even if Open
// failed partway, and safe to call more than once.
func (e *Eval) Close() {
	e.board = nil
	e.ptr = nil
	e.queue = nil
	e.opened = false
}
