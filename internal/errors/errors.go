package errors

import (
	"errors"
	"fmt"
)

// ParseError is the base interface for all parser errors.
type ParseError interface {
	error
	IsParseError() bool
}

// Compile-time verification that all error types implement ParseError.
var (
	_ ParseError = (*BadNameError)(nil)
	_ ParseError = (*MissingValueError)(nil)
)

// Sentinel errors for failure modes that carry no further detail.
var (
	// ErrMissingHelpArg indicates the help command was invoked without a
	// command name to look up.
	ErrMissingHelpArg = errors.New("missing argument for the help command")

	// ErrNotUnicode indicates the OS argument vector contained bytes that
	// could not be decoded as valid UTF-8 text.
	ErrNotUnicode = errors.New("arguments are not valid unicode strings")
)

// BadNameError indicates an unregistered flag, option, or command name,
// either among the command-line arguments or in an accessor call.
type BadNameError struct {
	Detail string
}

func (e *BadNameError) Error() string {
	return e.Detail
}

// IsParseError implements ParseError.
func (e *BadNameError) IsParseError() bool { return true }

// MissingValueError indicates an option on the command line had no value
// available. Cluster is set when the option character appeared inside a
// condensed short-form cluster; it then names the surrounding token.
type MissingValueError struct {
	Option  string
	Cluster string
}

func (e *MissingValueError) Error() string {
	if e.Cluster != "" {
		return fmt.Sprintf("missing value for '%s' in %s", e.Option, e.Cluster)
	}

	return fmt.Sprintf("missing value for %s", e.Option)
}

// IsParseError implements ParseError.
func (e *MissingValueError) IsParseError() bool { return true }
