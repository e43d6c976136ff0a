// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the human-readable text for a cell. Cells that are not
// stringers fall back to their literal representation.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		return literal.String(c)
	}

	return b.String()
}
