package lib

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned by Evaluate when the right operand of a
// division evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// SyntaxError is returned by Parse when the lookahead token does not match
// any kind the current grammar rule accepts.
type SyntaxError struct {
	Expected []tokenType
	Got      token
}

func (e *SyntaxError) Error() string {
	names := make([]string, len(e.Expected))
	for i, tokType := range e.Expected {
		names[i] = tokenTypeString(tokType)
	}
	return fmt.Sprintf(
		"Expecting %s but got <%s>",
		strings.Join(names, " or "),
		tokenString(e.Got))
}
