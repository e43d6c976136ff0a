// Released under an MIT license. See LICENSE.

// Package list provides mal's list type. A list is written with parentheses
// and, when evaluated, is either a special form or a function application.
package list

import (
	"github.com/michaelmacinnis/mal/internal/common"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/interface/sequence"
)

const name = "list"

// T (list) wraps a slice of cells.
type T []cell.I

type list = T

// New creates a new list composed of all of the elements in elements.
// The list shares the backing array of elements.
func New(elements ...cell.I) cell.I {
	if elements == nil {
		elements = []cell.I{}
	}

	l := list(elements)

	return &l
}

// Elements returns the cells held by the list l.
func (l *list) Elements() []cell.I {
	return []cell.I(*l)
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	return Is(c) && sequence.Equal(l.Elements(), To(c).Elements())
}

// Length returns the number of elements in the list l.
func (l *list) Length() int {
	return len(*l)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	return sequence.Join("(", l.Elements(), literal.String, ")")
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return sequence.Join("(", l.Elements(), common.String, ")")
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a list context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a sequence.
	_ = sequence.I(&t)

	// The list type is a stringer.
	_ = common.Stringer(&t)
}
