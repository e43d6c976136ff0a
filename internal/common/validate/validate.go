// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to mal's primitives.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/mal/internal/common/fault"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
)

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed returns an error unless args holds exactly n cells.
func Fixed(name string, args []cell.I, n int) error {
	if len(args) != n {
		return Mismatch(name, args, Count(n, "argument", "s"))
	}

	return nil
}

// Integers returns the values of args if args holds exactly n integers.
func Integers(name string, args []cell.I, n int) ([]int64, error) {
	expected := Count(n, "integer", "s")

	if len(args) != n {
		return nil, Mismatch(name, args, expected)
	}

	v := make([]int64, n)

	for i, a := range args {
		if !num.Is(a) {
			return nil, Mismatch(name, args, expected)
		}

		v[i] = num.To(a).Int()
	}

	return v, nil
}

// Mismatch creates the error reported when name is passed args it cannot use.
func Mismatch(name string, args []cell.I, expected string) error {
	return &fault.ArityOrTypeMismatch{
		Args:     args,
		Expected: expected,
		Function: name,
	}
}
