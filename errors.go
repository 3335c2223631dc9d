package bigint

import "fmt"

// InvalidNumberError is returned by FromString when the input is not a
// well-formed decimal integer literal. It is the only error kind this
// package produces.
type InvalidNumberError struct {
	Input  string
	Reason string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("bigint: invalid number %q: %s", e.Input, e.Reason)
}

func invalidNumber(input, reason string) *InvalidNumberError {
	return &InvalidNumberError{Input: input, Reason: reason}
}
