// Package tree implements the N-ary node abstraction shared by the
// expression tree and the logical/physical plan trees (spec.md §4.1): fixed
// or dynamic children, pre-/post-order traversal, a parent-aware traversal
// variant, and structural hash/equality/clone built only from a node's
// class tag, its own payload hash/equals, and its children.
//
// The teacher expresses the equivalent polymorphism with Go interfaces and
// a type switch per operation (sql.Expression, sql.Node); this module
// collapses the repeated boilerplate (Children(), WithChildren(), walk
// helpers) into one generic implementation every concrete node type embeds,
// the way original_source's nodebase.h factors the same concern out of
// Expr/LogicNode/PhysicNode in the C++ source this spec was distilled from.
package tree

import "github.com/mitchellh/hashstructure"

// mixer is the fixed XOR-combine constant spec.md §4.1 mandates for
// structural hashing (the boost::hash_combine constant).
const mixer uint64 = 0x9e3779b9

// Node is the capability set every concrete expression/plan node variant
// implements. ClassTag discriminates the concrete variant (e.g. a BinExpr
// vs a ColExpr); PayloadHash/PayloadEquals compare only the node's own
// fields, never its children — Hash/Equals (below) handle recursion.
type Node interface {
	ClassTag() string
	Children() []Node
	PayloadHash() uint64
	PayloadEquals(other Node) bool
	Clone(children []Node) Node
	Explain() string
}

// Hash computes a structural hash: the node's own payload hash XOR-combined
// with each child's Hash, folded left to right with the fixed mixer
// constant, matching spec.md §4.1's "ordered children hash".
func Hash(n Node) uint64 {
	h := n.PayloadHash()
	for _, c := range n.Children() {
		h = combine(h, Hash(c))
	}
	return h
}

func combine(a, b uint64) uint64 {
	return a ^ (b + mixer + (a << 6) + (a >> 2))
}

// Equals implements structural equality: same class tag, same payload, and
// pairwise-equal children in order.
func Equals(a, b Node) bool {
	if a.ClassTag() != b.ClassTag() {
		return false
	}
	if !a.PayloadEquals(b) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equals(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Clone recurses, preserving class tag, cloning every child first so a
// parent's Clone(children) receives already-cloned children.
func Clone(n Node) Node {
	kids := n.Children()
	cloned := make([]Node, len(kids))
	for i, k := range kids {
		cloned[i] = Clone(k)
	}
	return n.Clone(cloned)
}

// HashLeaf reduces an arbitrary leaf payload (a Datum, a BinOp tag, a column
// ordinal) to a uint64 via hashstructure, the way PayloadHash implementations
// are expected to hash their own fields without a hand-rolled per-type
// switch duplicating Equals. Falls back to 0 only if hashstructure itself
// errors, which it does not for the plain value/struct payloads used here.
func HashLeaf(v interface{}) uint64 {
	h, err := hashstructure.Hash(v, nil)
	if err != nil {
		return 0
	}
	return h
}

// WalkFunc is invoked once per node during a pre-order or post-order Walk.
// Returning false from a pre-order callback skips that node's children.
type WalkFunc func(n Node) bool

// WalkPreOrder visits n, then each child, recursively, in insertion order.
func WalkPreOrder(n Node, f WalkFunc) {
	if !f(n) {
		return
	}
	for _, c := range n.Children() {
		WalkPreOrder(c, f)
	}
}

// WalkPostOrder visits each child recursively before n, so n is visited
// after all of its descendants.
func WalkPostOrder(n Node, f WalkFunc) {
	for _, c := range n.Children() {
		WalkPostOrder(c, f)
	}
	f(n)
}

// ParentWalkFunc receives (parent, depth, nth, node); parent is nil and nth
// is -1 for the root.
type ParentWalkFunc func(parent Node, depth, nth int, node Node)

// WalkWithParent is the parent/child traversal variant of spec.md §4.1,
// driving a pre-order walk while tracking depth and the child's ordinal
// position under its parent.
func WalkWithParent(n Node, f ParentWalkFunc) {
	walkWithParent(nil, 0, -1, n, f)
}

func walkWithParent(parent Node, depth, nth int, n Node, f ParentWalkFunc) {
	f(parent, depth, nth, n)
	for i, c := range n.Children() {
		walkWithParent(n, depth+1, i, c, f)
	}
}
