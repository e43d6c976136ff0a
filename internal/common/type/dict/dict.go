// Released under an MIT license. See LICENSE.

// Package dict provides mal's map literal. The reader does not pair up
// keys and values; a dict is the flat, ordered run of cells between braces.
package dict

import (
	"github.com/michaelmacinnis/mal/internal/common"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/interface/sequence"
)

const name = "map"

// T (dict) wraps a slice of alternating keys and values.
type T []cell.I

type dict = T

// New creates a new dict from the alternating keys and values in elements.
func New(elements ...cell.I) cell.I {
	if elements == nil {
		elements = []cell.I{}
	}

	d := dict(elements)

	return &d
}

// Elements returns the keys and values held by the dict d, in source order.
func (d *dict) Elements() []cell.I {
	return []cell.I(*d)
}

// Equal returns true if c is a dict with the same elements in the same order.
func (d *dict) Equal(c cell.I) bool {
	return Is(c) && sequence.Equal(d.Elements(), To(c).Elements())
}

// Literal returns the literal representation of the dict d.
func (d *dict) Literal() string {
	return sequence.Join("{", d.Elements(), literal.String, "}")
}

// Name returns the name for a dict type.
func (d *dict) Name() string {
	return name
}

// String returns the text representation of the dict d.
func (d *dict) String() string {
	return sequence.Join("{", d.Elements(), common.String, "}")
}

// Is returns true if c is a dict.
func Is(c cell.I) bool {
	_, ok := c.(*dict)

	return ok
}

// To returns a dict if c is a dict; Otherwise it panics.
func To(c cell.I) *dict {
	if t, ok := c.(*dict); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a map context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t dict

	// The dict type is a cell.
	_ = cell.I(&t)

	// The dict type has a literal representation.
	_ = literal.I(&t)

	// The dict type is a sequence.
	_ = sequence.I(&t)

	// The dict type is a stringer.
	_ = common.Stringer(&t)
}
