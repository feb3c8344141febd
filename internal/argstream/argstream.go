// Package argstream provides the single-pass token cursor shared by nested
// parse calls.
package argstream

// Stream is a single-pass cursor over an ordered sequence of argument
// tokens. Nested parsers share one Stream by pointer so that a command's
// parser continues consuming where its parent stopped. There is no rewind
// and no lookahead beyond the current token.
type Stream struct {
	args  []string
	index int
}

// New returns a Stream positioned at the first token.
func New(args []string) *Stream {
	return &Stream{args: args}
}

// HasNext reports whether any tokens remain.
func (s *Stream) HasNext() bool {
	return s.index < len(s.args)
}

// Next returns the current token and advances the cursor.
// Callers must check HasNext first.
func (s *Stream) Next() string {
	s.index++
	return s.args[s.index-1]
}
