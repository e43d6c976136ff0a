// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mal/internal/common/fault"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
	"github.com/michaelmacinnis/mal/internal/common/validate"
)

// arithmetic creates a primitive that applies op to exactly two integers.
func arithmetic(name string, op func(a, b int64) (int64, error)) func([]cell.I) (cell.I, error) {
	return func(args []cell.I) (cell.I, error) {
		v, err := validate.Integers(name, args, 2) //nolint:gomnd
		if err != nil {
			return nil, err
		}

		r, err := op(v[0], v[1])
		if err != nil {
			return nil, err
		}

		return num.New(r), nil
	}
}

// Overflow wraps, as it does for Go's int64.

func add(a, b int64) (int64, error) {
	return a + b, nil
}

// div truncates toward zero.
func div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fault.ErrDivisionByZero
	}

	return a / b, nil
}

func mul(a, b int64) (int64, error) {
	return a * b, nil
}

func sub(a, b int64) (int64, error) {
	return a - b, nil
}
