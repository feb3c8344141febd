package argparse

import "log/slog"

// Option configures a Parser using the functional options pattern. Options
// may be supplied to New in any order. A command's parser is built the same
// way and attached with WithCommand.
type Option func(*Parser)

// ===== Texts =====

// WithHelptext sets the parser's help text. A non-empty help text activates
// the automatic --help flag, and the -h shortcut when no other entry has
// registered the "h" alias. The text is stored verbatim and printed trimmed
// of surrounding whitespace.
func WithHelptext(text string) Option {
	return func(p *Parser) {
		p.helptext = text
	}
}

// WithVersion sets the parser's version text. A non-empty version text
// activates the automatic --version flag, and the -v shortcut when no
// other entry has registered the "v" alias.
func WithVersion(text string) Option {
	return func(p *Parser) {
		p.version = text
	}
}

// ===== Registration =====

// WithFlag registers a flag. The spec string holds one or more whitespace-
// separated aliases; a single-character alias doubles as a short-form
// shortcut.
//
//	argparse.New(argparse.WithFlag("verbose v"))
func WithFlag(spec string) Option {
	return func(p *Parser) {
		p.registerFlag(spec)
	}
}

// WithOption registers a value-taking option. The spec string holds one or
// more whitespace-separated aliases.
//
//	argparse.New(argparse.WithOption("output out o"))
func WithOption(spec string) Option {
	return func(p *Parser) {
		p.registerOption(spec, "", false)
	}
}

// WithOptionDefault registers a value-taking option with a default value.
// Value returns the default when the option was not supplied; Count, Found,
// and Values are unaffected by it.
func WithOptionDefault(spec, fallback string) Option {
	return func(p *Parser) {
		p.registerOption(spec, fallback, true)
	}
}

// WithCommand registers a command under the whitespace-separated aliases in
// spec. The command's help text, flags, and options are registered on the
// command's own parser.
//
//	argparse.New(
//	    argparse.WithHelptext("Usage: appname..."),
//	    argparse.WithCommand("boo", argparse.New(
//	        argparse.WithHelptext("Usage: appname boo..."),
//	        argparse.WithFlag("quiet q"),
//	    )),
//	)
func WithCommand(spec string, cmd *Parser) Option {
	return func(p *Parser) {
		p.registerCommand(spec, cmd)
	}
}

// WithCallback registers a callback on a command's parser. If the command
// is found, the callback is called with the command name and the command's
// parser once the command has parsed successfully.
func WithCallback(fn CommandFunc) Option {
	return func(p *Parser) {
		p.callback = fn
	}
}

// WithHelpCommand enables the automatic "help" command: "appname help
// <command>" prints the named command's help text and exits.
func WithHelpCommand() Option {
	return func(p *Parser) {
		p.helpCommand = true
	}
}

// ===== Logging =====

// WithLogger sets the logger for debug tracing of the engine's
// classification decisions. If not set, the parser is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}
