package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for malformed expressions.
	ErrSyntax = errors.New("syntax error")
	// ErrUndefined is returned when an expression refers to an unknown
	// variable or function.
	ErrUndefined = errors.New("undefined")
	// ErrDomain is returned when a function argument is out of range, like
	// a negative factorial.
	ErrDomain = errors.New("argument out of domain")
)

func syntaxError(pos int, format string, args ...interface{}) error {
	return fmt.Errorf("%w at position %d: %s", ErrSyntax, pos+1, fmt.Sprintf(format, args...))
}
