// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/mal/internal/common/fault"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/scope"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/type/fn"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/type/vector"
)

// MaxDepth is the deepest nesting of evaluations allowed before giving up
// with a *fault.ResourceExhausted error.
const MaxDepth = 10000

// Eval evaluates the cell c in the scope s.
func Eval(c cell.I, s scope.I) (cell.I, error) {
	m := &machine{}

	return m.eval(c, s)
}

// machine tracks the state of a single top-level evaluation.
type machine struct {
	depth int
}

func (m *machine) apply(f cell.I, args []cell.I) (cell.I, error) {
	switch f := f.(type) {
	case *fn.Native:
		return f.Call(args)

	case *fn.Closure:
		s, err := f.Bind(args)
		if err != nil {
			return nil, err
		}

		return m.eval(f.Body, s)
	}

	return nil, &fault.NotAFunction{Value: f}
}

func (m *machine) eval(c cell.I, s scope.I) (cell.I, error) {
	m.depth++
	defer func() {
		m.depth--
	}()

	if m.depth > MaxDepth {
		return nil, &fault.ResourceExhausted{Limit: MaxDepth}
	}

	switch t := c.(type) {
	case *sym.T:
		v, ok := s.Lookup(t.String())
		if !ok {
			return nil, &fault.UnknownSymbol{Name: t.String()}
		}

		return v, nil

	case *list.T:
		if t.Length() == 0 {
			return c, nil
		}

		return m.form(c, t.Elements(), s, syntax)

	case *vector.T:
		if t.Length() == 0 {
			return c, nil
		}

		return m.form(c, t.Elements(), s, bracketed)
	}

	return c, nil
}

// form evaluates the non-empty form c with elements. If the head of
// the form is a symbol naming one of the special forms in table, that
// special form is evaluated. Otherwise, every element is evaluated and
// the first is applied to the rest.
func (m *machine) form(c cell.I, elements []cell.I, s scope.I, table map[string]special) (cell.I, error) {
	if h, ok := elements[0].(*sym.T); ok {
		if f, ok := table[h.String()]; ok {
			return f(m, c, elements[1:], s)
		}
	}

	evaluated := make([]cell.I, len(elements))

	for i, e := range elements {
		v, err := m.eval(e, s)
		if err != nil {
			return nil, err
		}

		evaluated[i] = v
	}

	return m.apply(evaluated[0], evaluated[1:])
}

func truthy(c cell.I) bool {
	if null.Is(c) {
		return false
	}

	if boolean.Is(c) {
		return boolean.To(c).Bool()
	}

	return true
}
