// Released under an MIT license. See LICENSE.

// Package env provides mal's environment type.
package env

import (
	"sort"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/scope"
	"github.com/michaelmacinnis/mal/internal/common/struct/hash"
)

// T (env) maps names to values and links to the enclosing env, if any.
// An env stays alive as long as an evaluation or a closure refers to it.
type T struct {
	previous scope.I
	*hash.T
}

type env = T

// New creates a new env enclosed by previous. Previous may be nil.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		T:        hash.New(),
	}
}

// Define associates the name k with the cell v in the env e.
// Enclosing envs are never modified.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Lookup retrieves the value associated with the name k in the env e or,
// failing that, in the nearest enclosing env that has k.
func (e *env) Lookup(k string) (cell.I, bool) {
	var s scope.I = e

	for s != nil {
		o, ok := s.(*env)
		if !ok {
			return s.Lookup(k)
		}

		if v, ok := o.Get(k); ok {
			return v, true
		}

		s = o.previous
	}

	return nil, false
}

// Names returns every name visible from the env e, sorted.
func (e *env) Names() []string {
	seen := map[string]bool{}

	for s := scope.I(e); s != nil; s = s.Enclosing() {
		o, ok := s.(*env)
		if !ok {
			for _, k := range s.Names() {
				seen[k] = true
			}

			break
		}

		for _, k := range o.Keys() {
			seen[k] = true
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = scope.I(&t)
}
