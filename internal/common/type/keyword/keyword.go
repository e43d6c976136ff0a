// Released under an MIT license. See LICENSE.

// Package keyword provides mal's keyword type. Keywords evaluate to
// themselves and are never equal to a symbol with the same text.
package keyword

import (
	"github.com/michaelmacinnis/mal/internal/common"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
)

const name = "keyword"

// T (keyword) wraps Go's string type. The leading ':' is not stored.
type T string

type keyword = T

// New creates a keyword cell.
func New(v string) cell.I {
	k := keyword(v)

	return &k
}

// Equal returns true if c is a keyword with the same text.
func (k *keyword) Equal(c cell.I) bool {
	return Is(c) && k.Text() == To(c).Text()
}

// Literal returns the literal representation of the keyword k.
func (k *keyword) Literal() string {
	return ":" + string(*k)
}

// Name returns the type name for the keyword k.
func (k *keyword) Name() string {
	return name
}

// String returns the printed form of the keyword k.
func (k *keyword) String() string {
	return k.Literal()
}

// Text returns the keyword's text without the leading ':'.
func (k *keyword) Text() string {
	return string(*k)
}

// Is returns true if c is a keyword.
func Is(c cell.I) bool {
	_, ok := c.(*keyword)

	return ok
}

// To returns a keyword if c is a keyword; Otherwise it panics.
func To(c cell.I) *keyword {
	if t, ok := c.(*keyword); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a keyword context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t keyword

	// The keyword type is a cell.
	_ = cell.I(&t)

	// The keyword type has a literal representation.
	_ = literal.I(&t)

	// The keyword type is a stringer.
	_ = common.Stringer(&t)
}
