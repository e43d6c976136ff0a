// Released under an MIT license. See LICENSE.

// Package literal defines the interface for mal types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal (machine-readable) representation for a cell.
// Cells without a literal form are rendered as an opaque placeholder.
func String(c cell.I) string {
	if c == nil {
		return "nil"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
