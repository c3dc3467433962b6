package readinput

import (
	"fmt"

	"github.com/aretw0/readinput/pkg/constraint"
	"github.com/aretw0/readinput/pkg/parse"
)

// NewBasic creates a Builder for any built-in kind with no prompt.
func NewBasic[T parse.Basic]() Builder[T] {
	return New(parse.Scalar[T]())
}

// Simple reads a value of a built-in kind from standard input with no
// configuration.
func Simple[T parse.Basic]() T {
	return NewBasic[T]().Get()
}

// Valid reads a value of a built-in kind that satisfies pred.
func Valid[T parse.Basic](pred func(T) bool) T {
	return NewBasic[T]().Test(pred).Get()
}

// Inside reads a value of a built-in kind that satisfies c.
func Inside[T parse.Basic](c constraint.Constraint[T]) T {
	return NewBasic[T]().Inside(c).Get()
}

// WithDescription is an ErrMatcher that shows the parse error itself.
func WithDescription(err error) (string, bool) {
	return fmt.Sprintf("Error \"%v\"", err), true
}
