// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/mal/internal/common"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/str"
)

// join renders each of args, readably or not, and joins them with sep.
func join(args []cell.I, readable bool, sep string) string {
	render := common.String
	if readable {
		render = literal.String
	}

	s := make([]string, len(args))
	for i, a := range args {
		s[i] = render(a)
	}

	return strings.Join(s, sep)
}

func makeString(args []cell.I) (cell.I, error) {
	return str.New(join(args, false, "")), nil
}

func prStr(args []cell.I) (cell.I, error) {
	return str.New(join(args, true, " ")), nil
}

// printer creates a primitive that writes its arguments to out,
// separated by spaces and followed by a newline.
func printer(name string, out io.Writer, readable bool) func([]cell.I) (cell.I, error) {
	return func(args []cell.I) (cell.I, error) {
		_, err := fmt.Fprintln(out, join(args, readable, " "))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return null.Nil, nil
	}
}
