package argparse

import "github.com/wagiedev/argparse-go/internal/errors"

// Re-export error types from internal package

// BadNameError indicates an unregistered flag, option, or command name.
type BadNameError = errors.BadNameError

// MissingValueError indicates an option with no value available.
type MissingValueError = errors.MissingValueError

// ParseError is the base interface for all parser errors.
type ParseError = errors.ParseError

// Re-export sentinel errors from internal package.
var (
	// ErrMissingHelpArg indicates the help command was invoked without a
	// command name to look up.
	ErrMissingHelpArg = errors.ErrMissingHelpArg

	// ErrNotUnicode indicates the OS argument vector contained bytes that
	// could not be decoded as valid UTF-8 text.
	ErrNotUnicode = errors.ErrNotUnicode
)
