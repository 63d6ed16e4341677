// Package binder implements semantic analysis of a parsed SelectStmt against
// the catalog: scope-based table/column resolution, expression typing, and
// operator dispatch binding (spec.md §4.2).
//
// Grounded on original_source's server/experimental/src/optimizer/binder.{h,cpp}
// and bindselect.cpp for the scope-chain shape the distilled spec
// summarizes, and on the teacher's sql/errors_test.go for the
// Kind.New(...)-per-failure-class error style.
package binder

import (
	"strings"

	"github.com/andb/andb/internal/ast"
)

// scope is a case-insensitive mapping from alias to TableRef, with a parent
// pointer for nested scopes. Only one scope is ever exercised in this core
// (spec.md §4.2: "reserved — only one scope is exercised"); the parent
// chain exists so resolveTable's "walk scopes from innermost outward"
// wording is literally true rather than vacuously true.
type scope struct {
	parent *scope
	tables map[string]ast.TableRef
	order  []ast.TableRef
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, tables: make(map[string]ast.TableRef)}
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (s *scope) get(alias string) (ast.TableRef, bool) {
	ref, ok := s.tables[key(alias)]
	return ref, ok
}

func (s *scope) put(alias string, ref ast.TableRef) {
	s.tables[key(alias)] = ref
	s.order = append(s.order, ref)
}

// lookupChain walks from this scope outward through parents.
func (s *scope) lookupChain(alias string) (ast.TableRef, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if ref, ok := cur.get(alias); ok {
			return ref, true
		}
	}
	return nil, false
}

// allInOrder returns every TableRef in this scope. Go maps have no stable
// iteration order, so the scope also tracks insertion order separately.
func (s *scope) allInOrder() []ast.TableRef {
	out := make([]ast.TableRef, len(s.order))
	copy(out, s.order)
	return out
}
