package expr

import (
	"strings"

	"github.com/andb/andb/internal/tree"
)

// SelStar is `*` or `alias.*`, expanded away during selection binding
// (spec.md §4.2's bind_selections) but representable before that happens.
type SelStar struct {
	base
	TabAlias string
}

var _ Expr = (*SelStar)(nil)

func NewSelStar(tabAlias string) *SelStar {
	return &SelStar{TabAlias: tabAlias}
}

func (s *SelStar) ClassTag() string      { return "SelStar" }
func (s *SelStar) Children() []tree.Node { return nil }

func (s *SelStar) PayloadHash() uint64 {
	return tree.HashLeaf(struct{ Tag, Alias string }{"SelStar", strings.ToLower(s.TabAlias)})
}

func (s *SelStar) PayloadEquals(other tree.Node) bool {
	o, ok := other.(*SelStar)
	return ok && strings.EqualFold(s.TabAlias, o.TabAlias)
}

func (s *SelStar) Clone(children []tree.Node) tree.Node {
	clone := *s
	return &clone
}

func (s *SelStar) Explain() string {
	if s.TabAlias == "" {
		return "*"
	}
	return s.TabAlias + ".*"
}
