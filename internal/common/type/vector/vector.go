// Released under an MIT license. See LICENSE.

// Package vector provides mal's vector type. A vector holds the same
// elements a list would but is written with brackets and never equals a list.
package vector

import (
	"github.com/michaelmacinnis/mal/internal/common"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/interface/sequence"
)

const name = "vector"

// T (vector) wraps a slice of cells.
type T []cell.I

type vector = T

// New creates a new vector composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	if elements == nil {
		elements = []cell.I{}
	}

	v := vector(elements)

	return &v
}

// Elements returns the cells held by the vector v.
func (v *vector) Elements() []cell.I {
	return []cell.I(*v)
}

// Equal returns true if c is a vector with elements that are equal to v's.
func (v *vector) Equal(c cell.I) bool {
	return Is(c) && sequence.Equal(v.Elements(), To(c).Elements())
}

// Length returns the number of elements in the vector v.
func (v *vector) Length() int {
	return len(*v)
}

// Literal returns the literal representation of the vector v.
func (v *vector) Literal() string {
	return sequence.Join("[", v.Elements(), literal.String, "]")
}

// Name returns the name for a vector type.
func (v *vector) Name() string {
	return name
}

// String returns the text representation of the vector v.
func (v *vector) String() string {
	return sequence.Join("[", v.Elements(), common.String, "]")
}

// Is returns true if c is a vector.
func Is(c cell.I) bool {
	_, ok := c.(*vector)

	return ok
}

// To returns a vector if c is a vector; Otherwise it panics.
func To(c cell.I) *vector {
	if t, ok := c.(*vector); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a vector context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type has a literal representation.
	_ = literal.I(&t)

	// The vector type is a sequence.
	_ = sequence.I(&t)

	// The vector type is a stringer.
	_ = common.Stringer(&t)
}
