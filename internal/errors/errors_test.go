package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBadNameError_Creation tests BadNameError creation and formatting.
func TestBadNameError_Creation(t *testing.T) {
	err := &BadNameError{
		Detail: "--foo is not a recognised flag or option name",
	}

	require.Error(t, err)
	require.Equal(t, "--foo is not a recognised flag or option name", err.Error())
	require.True(t, err.IsParseError())
}

// TestMissingValueError_Standalone tests the message for a lone option.
func TestMissingValueError_Standalone(t *testing.T) {
	err := &MissingValueError{
		Option: "--opt",
	}

	require.Error(t, err)
	require.Equal(t, "missing value for --opt", err.Error())
}

// TestMissingValueError_Cluster tests that the message names both the
// option character and the surrounding cluster.
func TestMissingValueError_Cluster(t *testing.T) {
	err := &MissingValueError{
		Option:  "o",
		Cluster: "-xyo",
	}

	require.Error(t, err)
	require.Equal(t, "missing value for 'o' in -xyo", err.Error())
	require.True(t, err.IsParseError())
}

// TestSentinels tests that the sentinel errors carry the documented text.
func TestSentinels(t *testing.T) {
	require.EqualError(t, ErrMissingHelpArg, "missing argument for the help command")
	require.EqualError(t, ErrNotUnicode, "arguments are not valid unicode strings")
}
