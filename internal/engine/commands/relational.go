// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/order"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/validate"
)

func eq(args []cell.I) (cell.I, error) {
	if err := validate.Fixed("=", args, 2); err != nil { //nolint:gomnd
		return nil, err
	}

	return boolean.Bool(args[0].Equal(args[1])), nil
}

// relational creates a primitive that compares exactly two values using
// mal's structural ordering. Values that cannot be ordered satisfy no test.
func relational(name string, test func(int) bool) func([]cell.I) (cell.I, error) {
	return func(args []cell.I) (cell.I, error) {
		if err := validate.Fixed(name, args, 2); err != nil { //nolint:gomnd
			return nil, err
		}

		n, ok := order.Compare(args[0], args[1])

		return boolean.Bool(ok && test(n)), nil
	}
}

func ge(n int) bool {
	return n >= 0
}

func gt(n int) bool {
	return n > 0
}

func le(n int) bool {
	return n <= 0
}

func lt(n int) bool {
	return n < 0
}
