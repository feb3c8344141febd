package argparse

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var nopLogger = NopLogger()

// log returns the configured logger, or a silent one.
func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}

	return nopLogger
}
