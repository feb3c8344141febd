// Package errors defines the error types surfaced by the argparse parser.
//
// This package provides structured error types for the failure modes the
// parser engine and accessors can hit: unregistered names, options with no
// value available, the help command invoked without an argument, and
// argument vectors that are not valid text. All error types can be checked
// using errors.Is and errors.As.
package errors
