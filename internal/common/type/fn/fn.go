// Released under an MIT license. See LICENSE.

// Package fn provides mal's function types. A function is either a
// primitive implemented in Go or a closure written in mal. Code that
// applies functions can switch over exactly these two types.
package fn

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/interface/scope"
	"github.com/michaelmacinnis/mal/internal/common/type/env"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/validate"
)

const name = "function"

// I (fn) is implemented only by *Native and *Closure.
type I interface {
	cell.I
	literal.I

	function()
}

// Is returns true if c is a function.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// Native is a primitive function.
type Native struct {
	call  func([]cell.I) (cell.I, error)
	label string
}

// NewNative creates a primitive called label that runs call.
func NewNative(label string, call func([]cell.I) (cell.I, error)) *Native {
	return &Native{call: call, label: label}
}

// Call invokes the primitive n with the evaluated arguments args.
func (n *Native) Call(args []cell.I) (cell.I, error) {
	return n.call(args)
}

// Equal returns true if c is the same primitive as n.
func (n *Native) Equal(c cell.I) bool {
	p, ok := c.(*Native)

	return ok && p == n
}

// Literal returns the printed placeholder for the primitive n.
func (n *Native) Literal() string {
	return "#<function " + n.label + ">"
}

// Name returns the name of the function type.
func (n *Native) Name() string {
	return name
}

func (n *Native) function() {}

// Closure is a function defined in mal. It captures the scope it was
// created in; each call binds Params in a fresh scope enclosed by it.
type Closure struct {
	Body   cell.I
	Params []string
	Rest   string // Name bound to any extra arguments, if non-empty.
	Scope  scope.I
}

// Bind creates the scope for a call to the closure c with args.
func (c *Closure) Bind(args []cell.I) (scope.I, error) {
	n := len(c.Params)

	if len(args) < n || (c.Rest == "" && len(args) > n) {
		expected := validate.Count(n, "argument", "s")
		if c.Rest != "" {
			expected = "at least " + expected
		}

		return nil, validate.Mismatch(c.Literal(), args, expected)
	}

	s := env.New(c.Scope)

	for i, p := range c.Params {
		s.Define(p, args[i])
	}

	if c.Rest != "" {
		rest := make([]cell.I, len(args)-n)
		copy(rest, args[n:])

		s.Define(c.Rest, list.New(rest...))
	}

	return s, nil
}

// Equal returns true if c is the same closure as o.
func (c *Closure) Equal(o cell.I) bool {
	p, ok := o.(*Closure)

	return ok && p == c
}

// Literal returns the printed placeholder for the closure c.
func (c *Closure) Literal() string {
	return "#<function>"
}

// Name returns the name of the function type.
func (c *Closure) Name() string {
	return name
}

func (c *Closure) function() {}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var n Native

	// The native type is a function.
	_ = I(&n)

	var c Closure

	// The closure type is a function.
	_ = I(&c)
}
