package application

import (
	"errors"
	"fmt"
)

// ErrNoUniqueEntry is returned by goto and bare-name jumps when the
// candidate set has zero or more than one element.
var ErrNoUniqueEntry = errors.New("no unique entry found")

// ParseError reports a command argument that could not be understood.
// It aborts the command; the navigator position is unchanged.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse argument %q: %s", e.Token, e.Reason)
}

// UnknownCommandError reports a first token that is neither a command nor a
// uniquely-named ancestor or direct child.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unrecognized command: %q", e.Name)
}
