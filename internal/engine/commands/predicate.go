// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/type/fn"
	"github.com/michaelmacinnis/mal/internal/common/type/keyword"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
	"github.com/michaelmacinnis/mal/internal/common/type/str"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/validate"
)

// is returns true if the sole argument in args satisfies test.
func is(name string, args []cell.I, test func(cell.I) bool) (cell.I, error) {
	if err := validate.Fixed(name, args, 1); err != nil {
		return nil, err
	}

	return boolean.Bool(test(args[0])), nil
}

func isFunction(args []cell.I) (cell.I, error) {
	return is("fn?", args, fn.Is)
}

func isKeyword(args []cell.I) (cell.I, error) {
	return is("keyword?", args, keyword.Is)
}

func isNil(args []cell.I) (cell.I, error) {
	return is("nil?", args, null.Is)
}

func isNumber(args []cell.I) (cell.I, error) {
	return is("number?", args, num.Is)
}

func isString(args []cell.I) (cell.I, error) {
	return is("string?", args, str.Is)
}

func isSymbol(args []cell.I) (cell.I, error) {
	return is("symbol?", args, sym.Is)
}
