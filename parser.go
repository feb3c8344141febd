package argparse

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/wagiedev/argparse-go/internal/argstream"
	"github.com/wagiedev/argparse-go/internal/errors"
)

// CommandFunc is a callback registered on a command's parser. It is invoked
// with the matched command name and the command's parser, only after the
// command's own parse has returned successfully.
type CommandFunc func(name string, cmd *Parser)

// option is a value-taking entry. Values accumulate in the order supplied.
type option struct {
	values      []string
	fallback    string
	hasFallback bool
}

// flag is a boolean-like entry whose only state is an occurrence count.
type flag struct {
	count int
}

// Parser holds a set of registered flags, options, and commands, together
// with the state accumulated while parsing a token sequence against them.
//
// A Parser is built once with New, parsed exactly once, then queried any
// number of times. It is not safe for concurrent use while parsing; after
// Parse returns it is effectively read-only and may be shared freely.
type Parser struct {
	helptext string
	version  string

	// Entry lists are ordered by registration; the index maps bind every
	// registered alias to a position in the corresponding list so that
	// multiple aliases share one entry's accumulated state.
	options     []*option
	optionIndex map[string]int

	flags     []*flag
	flagIndex map[string]int

	commands     []*Parser
	commandIndex map[string]int

	arguments   []string
	commandName string
	callback    CommandFunc
	helpCommand bool

	logger *slog.Logger
}

// New creates a Parser configured by the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		optionIndex:  make(map[string]int),
		flagIndex:    make(map[string]int),
		commandIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// registerOption appends a new option entry and binds every whitespace-
// separated alias in spec to it. A later binding of an already-registered
// alias wins; the earlier entry stays but becomes unreachable by that
// alias. An empty spec registers an unreachable entry.
func (p *Parser) registerOption(spec, fallback string, hasFallback bool) {
	p.options = append(p.options, &option{fallback: fallback, hasFallback: hasFallback})
	index := len(p.options) - 1
	for _, alias := range strings.Fields(spec) {
		p.optionIndex[alias] = index
	}
}

// registerFlag appends a new flag entry; alias handling matches
// registerOption.
func (p *Parser) registerFlag(spec string) {
	p.flags = append(p.flags, &flag{})
	index := len(p.flags) - 1
	for _, alias := range strings.Fields(spec) {
		p.flagIndex[alias] = index
	}
}

// registerCommand appends a command's parser; alias handling matches
// registerOption.
func (p *Parser) registerCommand(spec string, cmd *Parser) {
	p.commands = append(p.commands, cmd)
	index := len(p.commands) - 1
	for _, alias := range strings.Fields(spec) {
		p.commandIndex[alias] = index
	}
}

// Parse parses the program's command-line arguments, skipping the program
// name. Returns ErrNotUnicode if any argument is not valid UTF-8 text.
func (p *Parser) Parse() error {
	args := os.Args[1:]
	for _, arg := range args {
		if !utf8.ValidString(arg) {
			return errors.ErrNotUnicode
		}
	}

	return p.ParseArgs(args)
}

// ParseArgs parses the given argument vector. It performs no OS access and
// is the entry point for tests and for callers that pre-split arguments
// themselves.
func (p *Parser) ParseArgs(args []string) error {
	return p.parseStream(argstream.New(args))
}

// Value returns the last value supplied for the named option, or the
// option's registered default if no value was supplied, or an empty string
// if the option has no default either. Returns a BadNameError if name is
// not a registered option name.
func (p *Parser) Value(name string) (string, error) {
	index, ok := p.optionIndex[name]
	if !ok {
		return "", &errors.BadNameError{
			Detail: fmt.Sprintf("'%s' is not a registered option name", name),
		}
	}
	opt := p.options[index]
	if len(opt.values) > 0 {
		return opt.values[len(opt.values)-1], nil
	}
	if opt.hasFallback {
		return opt.fallback, nil
	}

	return "", nil
}

// Values returns a copy of the named option's value list, in the order the
// values were supplied. Returns a BadNameError if name is not a registered
// option name.
func (p *Parser) Values(name string) ([]string, error) {
	index, ok := p.optionIndex[name]
	if !ok {
		return nil, &errors.BadNameError{
			Detail: fmt.Sprintf("'%s' is not a registered option name", name),
		}
	}

	return slices.Clone(p.options[index].values), nil
}

// Count returns the number of times the named flag or option was found.
// Returns a BadNameError if name is not a registered flag or option name.
func (p *Parser) Count(name string) (int, error) {
	if index, ok := p.flagIndex[name]; ok {
		return p.flags[index].count, nil
	}
	if index, ok := p.optionIndex[name]; ok {
		return len(p.options[index].values), nil
	}

	return 0, &errors.BadNameError{
		Detail: fmt.Sprintf("'%s' is not a registered flag or option name", name),
	}
}

// Found reports whether the named flag or option was found at least once.
// Returns a BadNameError if name is not a registered flag or option name.
func (p *Parser) Found(name string) (bool, error) {
	count, err := p.Count(name)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Args returns a copy of the positional arguments, in input order.
func (p *Parser) Args() []string {
	return slices.Clone(p.arguments)
}

// HasArgs reports whether one or more positional arguments were found.
func (p *Parser) HasArgs() bool {
	return len(p.arguments) > 0
}

// NumArgs returns the number of positional arguments.
func (p *Parser) NumArgs() int {
	return len(p.arguments)
}

// HasCmd reports whether a command was found.
func (p *Parser) HasCmd() bool {
	return p.commandName != ""
}

// CmdName returns the matched command's name, or an empty string if no
// command was found.
func (p *Parser) CmdName() string {
	return p.commandName
}

// CmdParser returns the matched command's parser, or nil if no command was
// found.
func (p *Parser) CmdParser() *Parser {
	if p.commandName == "" {
		return nil
	}

	return p.commands[p.commandIndex[p.commandName]]
}
