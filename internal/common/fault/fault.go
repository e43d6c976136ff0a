// Released under an MIT license. See LICENSE.

// Package fault provides the errors produced while evaluating mal code.
// Each error carries the offending values so that callers can inspect
// them with errors.As rather than by matching message text.
package fault

import (
	"errors"
	"strconv"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/interface/sequence"
)

// ErrDivisionByZero is returned when an integer is divided by zero.
var ErrDivisionByZero = errors.New("division by zero")

// ArityOrTypeMismatch reports a primitive called with the wrong number or
// kind of arguments.
type ArityOrTypeMismatch struct {
	Args     []cell.I
	Expected string
	Function string
}

func (e *ArityOrTypeMismatch) Error() string {
	return e.Function + ": expected " + e.Expected +
		", received " + sequence.Join("[", e.Args, literal.String, "]")
}

// MalformedSpecialForm reports a special form with the wrong shape.
type MalformedSpecialForm struct {
	Form   cell.I
	Reason string
}

func (e *MalformedSpecialForm) Error() string {
	return "malformed " + literal.String(e.Form) + ": " + e.Reason
}

// NotAFunction reports an attempt to apply something that is not a function.
type NotAFunction struct {
	Value cell.I
}

func (e *NotAFunction) Error() string {
	return literal.String(e.Value) + " is not a function"
}

// ResourceExhausted reports evaluation nested more deeply than Limit.
type ResourceExhausted struct {
	Limit int
}

func (e *ResourceExhausted) Error() string {
	return "evaluation nested deeper than " + strconv.Itoa(e.Limit) + " levels"
}

// UnknownSymbol reports a symbol with no binding in any enclosing scope.
type UnknownSymbol struct {
	Name string
}

func (e *UnknownSymbol) Error() string {
	return "'" + e.Name + "' not found"
}
