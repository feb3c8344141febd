package argparse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wagiedev/argparse-go/internal/argstream"
	"github.com/wagiedev/argparse-go/internal/errors"
)

// parseStream consumes tokens against this parser's registration tables
// until the stream is exhausted or an error occurs. Only the first token at
// a given parser level is eligible to match a command name; a matched
// command's parser takes over the shared stream from that point.
func (p *Parser) parseStream(stream *argstream.Stream) error {
	isFirstArg := true

	for stream.HasNext() {
		arg := stream.Next()

		switch {
		case arg == "--":
			for stream.HasNext() {
				p.arguments = append(p.arguments, stream.Next())
			}
			p.log().Debug("end-of-options sentinel", "positionals", len(p.arguments))

		case strings.HasPrefix(arg, "--"):
			if strings.Contains(arg, "=") {
				if err := p.handleEqualsOpt(arg); err != nil {
					return err
				}
			} else if err := p.handleLongOpt(arg, stream); err != nil {
				return err
			}

		case strings.HasPrefix(arg, "-"):
			switch {
			case arg == "-" || isDigit(arg[1]):
				// Lone "-" (stdin marker) and negative numbers are
				// positional.
				p.arguments = append(p.arguments, arg)
			case strings.Contains(arg, "="):
				if err := p.handleEqualsOpt(arg); err != nil {
					return err
				}
			default:
				if err := p.handleShortOpt(arg, stream); err != nil {
					return err
				}
			}

		case isFirstArg && p.isCommand(arg):
			if err := p.dispatchCommand(arg, stream); err != nil {
				return err
			}

		case isFirstArg && arg == "help" && p.helpCommand:
			if err := p.handleHelpCommand(stream); err != nil {
				return err
			}

		default:
			p.arguments = append(p.arguments, arg)
			p.log().Debug("positional argument", "arg", arg)
		}

		isFirstArg = false
	}

	return nil
}

// handleLongOpt handles a --name token without an inline value. Lookup
// order: flag, option, then the automatic help and version flags.
func (p *Parser) handleLongOpt(arg string, stream *argstream.Stream) error {
	name := arg[2:]
	if index, ok := p.flagIndex[name]; ok {
		p.flags[index].count++
		p.log().Debug("flag", "name", name, "count", p.flags[index].count)
		return nil
	}
	if index, ok := p.optionIndex[name]; ok {
		if !stream.HasNext() {
			return &errors.MissingValueError{Option: arg}
		}
		value := stream.Next()
		p.options[index].values = append(p.options[index].values, value)
		p.log().Debug("option", "name", name, "value", value)
		return nil
	}
	if name == "help" && p.helptext != "" {
		exitWithText(p.helptext)
		return nil
	}
	if name == "version" && p.version != "" {
		exitWithText(p.version)
		return nil
	}

	return &errors.BadNameError{
		Detail: fmt.Sprintf("%s is not a recognised flag or option name", arg),
	}
}

// handleShortOpt handles a -abc token. Every character after the dash is
// resolved independently; a value-taking character consumes the next stream
// token, so only the trailing character of a well-formed cluster can be an
// option.
func (p *Parser) handleShortOpt(arg string, stream *argstream.Stream) error {
	condensed := utf8.RuneCountInString(arg) > 2

	for _, c := range arg[1:] {
		alias := string(c)
		if index, ok := p.flagIndex[alias]; ok {
			p.flags[index].count++
			p.log().Debug("flag", "name", alias, "count", p.flags[index].count)
			continue
		}
		if index, ok := p.optionIndex[alias]; ok {
			if !stream.HasNext() {
				if condensed {
					return &errors.MissingValueError{Option: alias, Cluster: arg}
				}
				return &errors.MissingValueError{Option: arg}
			}
			value := stream.Next()
			p.options[index].values = append(p.options[index].values, value)
			p.log().Debug("option", "name", alias, "value", value)
			continue
		}
		if c == 'h' && p.helptext != "" {
			exitWithText(p.helptext)
			continue
		}
		if c == 'v' && p.version != "" {
			exitWithText(p.version)
			continue
		}
		if condensed {
			return &errors.BadNameError{
				Detail: fmt.Sprintf("'%s' in %s is not a recognised flag or option name", alias, arg),
			}
		}
		return &errors.BadNameError{
			Detail: fmt.Sprintf("%s is not a recognised flag or option name", arg),
		}
	}

	return nil
}

// handleEqualsOpt handles --name=value and -n=value tokens. Only options
// accept the inline form, and an empty value is an error.
func (p *Parser) handleEqualsOpt(arg string) error {
	name, value, _ := strings.Cut(arg, "=")
	index, ok := p.optionIndex[strings.TrimLeft(name, "-")]
	if !ok {
		return &errors.BadNameError{
			Detail: fmt.Sprintf("%s is not a recognised option name", name),
		}
	}
	if value == "" {
		return &errors.MissingValueError{Option: name}
	}
	p.options[index].values = append(p.options[index].values, value)
	p.log().Debug("option", "name", name, "value", value)

	return nil
}

// dispatchCommand hands the remaining stream to the named command's parser.
// The command name is recorded, and the command's callback invoked, only
// after the sub-parse returns successfully.
func (p *Parser) dispatchCommand(name string, stream *argstream.Stream) error {
	cmd := p.commands[p.commandIndex[name]]
	p.log().Debug("entering command", "command", name)
	if err := cmd.parseStream(stream); err != nil {
		return err
	}
	p.commandName = name
	if cmd.callback != nil {
		cmd.callback(name, cmd)
	}

	return nil
}

// handleHelpCommand implements the automatic "help <command>" form: the
// next token must name a registered command, whose help text is printed
// before exiting.
func (p *Parser) handleHelpCommand(stream *argstream.Stream) error {
	if !stream.HasNext() {
		return errors.ErrMissingHelpArg
	}
	name := stream.Next()
	index, ok := p.commandIndex[name]
	if !ok {
		return &errors.BadNameError{
			Detail: fmt.Sprintf("'%s' is not a recognised command name", name),
		}
	}
	exitWithText(p.commands[index].helptext)

	return nil
}

// isCommand reports whether name is a registered command alias.
func (p *Parser) isCommand(name string) bool {
	_, ok := p.commandIndex[name]
	return ok
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
