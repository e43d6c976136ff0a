// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/mal/internal/common/fault"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/scope"
	"github.com/michaelmacinnis/mal/internal/common/type/env"
	"github.com/michaelmacinnis/mal/internal/common/type/fn"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/type/vector"
)

// A special form receives its arguments unevaluated. Form is the whole
// form and is only used when reporting errors.
type special func(m *machine, form cell.I, args []cell.I, s scope.I) (cell.I, error)

//nolint:gochecknoglobals
var (
	// Special forms recognized at the head of a list.
	syntax map[string]special

	// Special forms recognized at the head of a vector.
	bracketed map[string]special
)

func init() { //nolint:gochecknoinits
	syntax = map[string]special{
		"def!":  define,
		"do":    block,
		"fn*":   lambda,
		"if":    branch,
		"let*":  let,
		"quote": quote,
	}

	bracketed = map[string]special{
		"let*": let,
	}
}

// (do form*)
func block(m *machine, _ cell.I, args []cell.I, s scope.I) (cell.I, error) {
	r := null.Nil

	for _, a := range args {
		v, err := m.eval(a, s)
		if err != nil {
			return nil, err
		}

		r = v
	}

	return r, nil
}

// (if condition consequent alternative?)
func branch(m *machine, form cell.I, args []cell.I, s scope.I) (cell.I, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, malformed(form, "expected (if condition then else?)")
	}

	v, err := m.eval(args[0], s)
	if err != nil {
		return nil, err
	}

	if truthy(v) {
		return m.eval(args[1], s)
	}

	if len(args) == 3 { //nolint:gomnd
		return m.eval(args[2], s)
	}

	return null.Nil, nil
}

// (def! symbol value)
func define(m *machine, form cell.I, args []cell.I, s scope.I) (cell.I, error) {
	if len(args) != 2 || !sym.Is(args[0]) {
		return nil, malformed(form, "expected (def! symbol value)")
	}

	v, err := m.eval(args[1], s)
	if err != nil {
		return nil, err
	}

	s.Define(sym.To(args[0]).String(), v)

	return v, nil
}

// (fn* (param* (& rest)?) body)
func lambda(_ *machine, form cell.I, args []cell.I, s scope.I) (cell.I, error) {
	if len(args) != 2 {
		return nil, malformed(form, "expected (fn* parameters body)")
	}

	elements, ok := bindings(args[0])
	if !ok {
		return nil, malformed(form, "parameters must be a list or vector")
	}

	c := &fn.Closure{Body: args[1], Scope: s}

	for i, e := range elements {
		if !sym.Is(e) {
			return nil, malformed(form, "parameters must be symbols")
		}

		if !sym.Named(e, "&") {
			c.Params = append(c.Params, sym.To(e).String())

			continue
		}

		if i != len(elements)-2 || !sym.Is(elements[i+1]) {
			return nil, malformed(form, "'&' must be followed by exactly one symbol")
		}

		c.Rest = sym.To(elements[i+1]).String()

		break
	}

	return c, nil
}

// (let* (symbol value ...) body)
func let(m *machine, form cell.I, args []cell.I, s scope.I) (cell.I, error) {
	if len(args) != 2 {
		return nil, malformed(form, "expected (let* bindings body)")
	}

	elements, ok := bindings(args[0])
	if !ok {
		return nil, malformed(form, "bindings must be a list or vector")
	}

	if len(elements)%2 != 0 {
		return nil, malformed(form, "bindings must come in symbol value pairs")
	}

	inner := env.New(s)

	for i := 0; i < len(elements); i += 2 {
		if !sym.Is(elements[i]) {
			return nil, malformed(form, "binding names must be symbols")
		}

		v, err := m.eval(elements[i+1], inner)
		if err != nil {
			return nil, err
		}

		inner.Define(sym.To(elements[i]).String(), v)
	}

	return m.eval(args[1], inner)
}

// (quote form)
func quote(_ *machine, form cell.I, args []cell.I, _ scope.I) (cell.I, error) {
	if len(args) != 1 {
		return nil, malformed(form, "expected (quote form)")
	}

	return args[0], nil
}

// Helper functions.

// bindings returns the elements of c if c is a list or vector.
func bindings(c cell.I) ([]cell.I, bool) {
	switch t := c.(type) {
	case *list.T:
		return t.Elements(), true
	case *vector.T:
		return t.Elements(), true
	}

	return nil, false
}

func malformed(form cell.I, reason string) error {
	return &fault.MalformedSpecialForm{Form: form, Reason: reason}
}
