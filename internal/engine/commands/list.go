// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
	"github.com/michaelmacinnis/mal/internal/common/type/vector"
	"github.com/michaelmacinnis/mal/internal/common/validate"
)

func count(args []cell.I) (cell.I, error) {
	if err := validate.Fixed("count", args, 1); err != nil {
		return nil, err
	}

	switch t := args[0].(type) {
	case *list.T:
		return num.New(int64(t.Length())), nil
	case *vector.T:
		return num.New(int64(t.Length())), nil
	}

	if null.Is(args[0]) {
		return num.New(0), nil
	}

	return nil, validate.Mismatch("count", args, "a list or vector")
}

func isEmpty(args []cell.I) (cell.I, error) {
	if err := validate.Fixed("empty?", args, 1); err != nil {
		return nil, err
	}

	switch t := args[0].(type) {
	case *list.T:
		return boolean.Bool(t.Length() == 0), nil
	case *vector.T:
		return boolean.Bool(t.Length() == 0), nil
	}

	return boolean.False, nil
}

func isList(args []cell.I) (cell.I, error) {
	return is("list?", args, list.Is)
}

func isVector(args []cell.I) (cell.I, error) {
	return is("vector?", args, vector.Is)
}

func makeList(args []cell.I) (cell.I, error) {
	return list.New(copied(args)...), nil
}

func makeVector(args []cell.I) (cell.I, error) {
	return vector.New(copied(args)...), nil
}

// copied returns a copy of args so that the new sequence does not share
// its backing array with the caller.
func copied(args []cell.I) []cell.I {
	c := make([]cell.I, len(args))
	copy(c, args)

	return c
}
