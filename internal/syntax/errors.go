package syntax

import (
	"errors"
	"fmt"
)

// Error reports a violated syntax rule. It is the only error kind returned
// by this package; the Message identifies the rule.
type Error struct {
	Message string
}

// NewError returns an *Error carrying msg.
func NewError(msg string) *Error {
	return &Error{Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}

// IsError reports whether err is, or wraps, an *Error.
func IsError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// charError builds the disallowed-character error for the named part
// ("local part" or "domain").
func charError(ch rune, part string) *Error {
	return &Error{Message: fmt.Sprintf("The character %c (0x%x) is not allowed in the %s.", ch, ch, part)}
}
