// Released under an MIT license. See LICENSE.

// Package sequence defines the interface shared by mal's lists, vectors and map literals.
package sequence

import (
	"strings"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
)

// I (sequence) is any cell holding an ordered run of cells.
type I interface {
	cell.I

	Elements() []cell.I
}

type sequence = I

// Is returns true if c is a sequence.
func Is(c cell.I) bool {
	_, ok := c.(sequence)

	return ok
}

// Equal returns true if a and b hold pairwise equal elements.
// It does not compare the sequences' types.
func Equal(a, b []cell.I) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Join renders each element with render and wraps the space-separated
// result in the opening and closing delimiters.
func Join(open string, elements []cell.I, render func(cell.I) string, close string) string {
	s := make([]string, len(elements))
	for i, e := range elements {
		s[i] = render(e)
	}

	return open + strings.Join(s, " ") + close
}
