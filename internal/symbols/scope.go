// Package symbols implements the lexically scoped symbol table: two
// namespaces (variables, functions) per Scope, chained to an optional
// parent, built on the generic open-chaining container.Map so lookup
// behavior stays reproducible across runs.
package symbols

import (
	"sort"

	"github.com/malphas-lang/coretype/internal/container"
	"github.com/malphas-lang/coretype/internal/types"
)

// defaultBuckets is the global scope's default bucket count.
const defaultBuckets = 128

// Symbol binds a name to a resolved Type. IsConstant records whether
// the binding was declared with `const`.
type Symbol struct {
	Name       string
	Type       types.Type
	IsConstant bool
}

// Scope holds two symbol tables — variables and functions — and an
// optional parent, forming a lexical chain. Only the global scope is
// populated by this front-end's covered core; nested scopes are a
// later phase's concern.
type Scope struct {
	variables *container.Map[Symbol]
	functions *container.Map[Symbol]
	parent    *Scope
}

// NewScope creates a scope with the given parent (nil for the global
// scope), allocating its two symbol tables with the global default
// bucket count.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		variables: container.NewMap[Symbol](defaultBuckets),
		functions: container.NewMap[Symbol](defaultBuckets),
		parent:    parent,
	}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// DeclareVariable inserts name into the variable namespace. It
// reports false if name is already bound in this scope (variables and
// functions are disjoint namespaces, so a function of the same name
// does not conflict).
func (s *Scope) DeclareVariable(sym Symbol) bool {
	if s.variables.Has(sym.Name) {
		return false
	}
	s.variables.Put(sym.Name, sym)
	return true
}

// DeclareFunction inserts name into the function namespace, with the
// same disjointness rule as DeclareVariable.
func (s *Scope) DeclareFunction(sym Symbol) bool {
	if s.functions.Has(sym.Name) {
		return false
	}
	s.functions.Put(sym.Name, sym)
	return true
}

// LookupVariable searches this scope and its ancestors for a variable
// binding.
func (s *Scope) LookupVariable(name string) (Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.variables.Get(name); ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// LookupFunction searches this scope and its ancestors for a function
// binding.
func (s *Scope) LookupFunction(name string) (Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.functions.Get(name); ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// Functions returns every function symbol declared directly in this
// scope, in name order.
func (s *Scope) Functions() []Symbol {
	return sortedSymbols(s.functions)
}

// Variables returns every variable symbol declared directly in this
// scope, in name order.
func (s *Scope) Variables() []Symbol {
	return sortedSymbols(s.variables)
}

func sortedSymbols(m *container.Map[Symbol]) []Symbol {
	keys := m.Keys()
	sort.Strings(keys)
	out := make([]Symbol, 0, len(keys))
	for _, k := range keys {
		sym, _ := m.Get(k)
		out = append(out, sym)
	}
	return out
}
