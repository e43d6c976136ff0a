// Released under an MIT license. See LICENSE.

// Package scope defines the interface for mal's environments.
package scope

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
)

// I (scope) is one link in a chain of environments. Define writes only to
// the receiving scope; Lookup walks from the receiver outward.
type I interface {
	Define(k string, v cell.I)
	Enclosing() I
	Lookup(k string) (cell.I, bool)
	Names() []string
}
