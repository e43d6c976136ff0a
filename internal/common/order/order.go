// Released under an MIT license. See LICENSE.

// Package order provides the structural ordering of mal values.
//
// Values of different types are ordered by type:
//
//	number < boolean < nil < symbol < keyword < string < list < vector < map < function
//
// Values of the same type are ordered by content. Sequences compare element
// by element and then by length. Functions are only comparable to themselves.
package order

import (
	"strings"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/sequence"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/type/dict"
	"github.com/michaelmacinnis/mal/internal/common/type/fn"
	"github.com/michaelmacinnis/mal/internal/common/type/keyword"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
	"github.com/michaelmacinnis/mal/internal/common/type/str"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/type/vector"
)

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater
// than b. The boolean result is false if a and b cannot be ordered.
func Compare(a, b cell.I) (int, bool) {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return sign(ra - rb), true
	}

	switch {
	case num.Is(a):
		x, y := num.To(a).Int(), num.To(b).Int()
		if x < y {
			return -1, true
		} else if x > y {
			return 1, true
		}

		return 0, true

	case boolean.Is(a):
		x, y := boolean.To(a).Bool(), boolean.To(b).Bool()
		if x == y {
			return 0, true
		} else if y {
			return -1, true
		}

		return 1, true

	case null.Is(a):
		return 0, true

	case sym.Is(a):
		return strings.Compare(sym.To(a).String(), sym.To(b).String()), true

	case keyword.Is(a):
		return strings.Compare(keyword.To(a).Text(), keyword.To(b).Text()), true

	case str.Is(a):
		return strings.Compare(str.To(a).String(), str.To(b).String()), true

	case sequence.Is(a):
		return elements(a.(sequence.I).Elements(), b.(sequence.I).Elements())
	}

	if a.Equal(b) {
		return 0, true
	}

	return 0, false
}

func elements(a, b []cell.I) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		n, ok := Compare(a[i], b[i])
		if !ok || n != 0 {
			return n, ok
		}
	}

	return sign(len(a) - len(b)), true
}

func rank(c cell.I) int {
	switch {
	case num.Is(c):
		return 0
	case boolean.Is(c):
		return 1
	case null.Is(c):
		return 2 //nolint:gomnd
	case sym.Is(c):
		return 3 //nolint:gomnd
	case keyword.Is(c):
		return 4 //nolint:gomnd
	case str.Is(c):
		return 5 //nolint:gomnd
	case list.Is(c):
		return 6 //nolint:gomnd
	case vector.Is(c):
		return 7 //nolint:gomnd
	case dict.Is(c):
		return 8 //nolint:gomnd
	case fn.Is(c):
		return 9 //nolint:gomnd
	}

	return 10 //nolint:gomnd
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}

	return 0
}
