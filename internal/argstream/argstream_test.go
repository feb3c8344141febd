package argstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStream_Empty tests that an empty stream reports no tokens.
func TestStream_Empty(t *testing.T) {
	s := New(nil)
	require.False(t, s.HasNext())
}

// TestStream_Walk tests that tokens come back in order, once each.
func TestStream_Walk(t *testing.T) {
	s := New([]string{"foo", "bar", "baz"})

	require.True(t, s.HasNext())
	require.Equal(t, "foo", s.Next())
	require.Equal(t, "bar", s.Next())
	require.True(t, s.HasNext())
	require.Equal(t, "baz", s.Next())
	require.False(t, s.HasNext())
}

// TestStream_SharedCursor tests that two holders of the same stream see a
// single cursor, as nested parse calls do.
func TestStream_SharedCursor(t *testing.T) {
	s := New([]string{"outer", "inner"})
	outer, inner := s, s

	require.Equal(t, "outer", outer.Next())
	require.Equal(t, "inner", inner.Next())
	require.False(t, outer.HasNext())
}
