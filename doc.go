// Package argparse implements a minimalist command-line argument parser.
//
// The parser supports long-form boolean flags with single-character
// shortcuts (--flag, -f), long-form string-valued options (--option <arg>,
// -o <arg>), inline values (--option=arg), condensed short-form clusters
// (-abc), automatic --help and --version flags, multivalued options, and
// git-style interfaces with arbitrarily-nested commands.
//
// # Basic Usage
//
// Build a parser with functional options, parse once, then query the
// result by name:
//
//	parser := argparse.New(
//	    argparse.WithHelptext("Usage: foobar..."),
//	    argparse.WithVersion("1.0"),
//	    argparse.WithFlag("foo f"),
//	    argparse.WithOption("bar b"),
//	)
//
//	if err := parser.Parse(); err != nil {
//	    argparse.Exit(err)
//	}
//
//	if found, _ := parser.Found("foo"); found {
//	    fmt.Println("Found --foo/-f flag.")
//	}
//
//	if value, err := parser.Value("bar"); err == nil && value != "" {
//	    fmt.Printf("Found --bar/-b option with value: %s\n", value)
//	}
//
//	for _, arg := range parser.Args() {
//	    fmt.Printf("Arg: %s\n", arg)
//	}
//
// # Commands
//
// A command is a nested parser activated when its name appears as the first
// unclassified token. Arguments after the command name belong to the
// command's parser:
//
//	parser := argparse.New(
//	    argparse.WithHelptext("Usage: appname..."),
//	    argparse.WithCommand("boo", argparse.New(
//	        argparse.WithHelptext("Usage: appname boo..."),
//	        argparse.WithFlag("quiet q"),
//	        argparse.WithCallback(func(name string, cmd *argparse.Parser) {
//	            fmt.Println("boo!")
//	        }),
//	    )),
//	)
//
// # Logging
//
// For tracing of classification decisions, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	parser := argparse.New(
//	    argparse.WithLogger(logger),
//	    argparse.WithFlag("verbose v"),
//	)
//
// # Error Handling
//
// Parse and the accessors return typed errors for the different failure
// scenarios:
//
//	if err := parser.Parse(); err != nil {
//	    var badName *argparse.BadNameError
//	    if errors.As(err, &badName) {
//	        log.Fatalf("unknown name: %v", badName)
//	    }
//	    argparse.Exit(err)
//	}
//
// The automatic --help and --version flags print to stdout and terminate
// the process with status 0; they never surface as errors.
package argparse
