package argparse

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Process-termination side effects go through these variables so tests can
// stub them.
var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Exit prints err to stderr in the form "Error: <message>." and terminates
// the process with status 1.
func Exit(err error) {
	fmt.Fprintf(stderr, "Error: %s.\n", err)
	osExit(1)
}

// exitWithText prints text to stdout, trimmed of surrounding whitespace,
// and terminates the process with status 0. Used by the automatic help and
// version short-circuits.
func exitWithText(text string) {
	fmt.Fprintln(stdout, strings.TrimSpace(text))
	osExit(0)
}
