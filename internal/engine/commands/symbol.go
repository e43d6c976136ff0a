// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/type/keyword"
	"github.com/michaelmacinnis/mal/internal/common/type/str"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/validate"
)

func makeKeyword(args []cell.I) (cell.I, error) {
	if err := validate.Fixed("keyword", args, 1); err != nil {
		return nil, err
	}

	switch {
	case keyword.Is(args[0]):
		return args[0], nil
	case str.Is(args[0]):
		return keyword.New(str.To(args[0]).String()), nil
	}

	return nil, validate.Mismatch("keyword", args, "a string or keyword")
}

func makeSymbol(args []cell.I) (cell.I, error) {
	if err := validate.Fixed("symbol", args, 1); err != nil {
		return nil, err
	}

	if !str.Is(args[0]) {
		return nil, validate.Mismatch("symbol", args, "a string")
	}

	return sym.New(str.To(args[0]).String()), nil
}
