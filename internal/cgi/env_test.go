package cgi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSEnvironSnapshotsProcessEnvironment(t *testing.T) {
	t.Setenv("HTTP_X_SNAPSHOT", "yes")
	t.Setenv("QUERY_STRING", "q=1=2") // the value may itself contain '='

	env := OSEnviron()

	require.Equal(t, "yes", env.Get("HTTP_X_SNAPSHOT"))
	require.Equal(t, "q=1=2", env.Get("QUERY_STRING"))
}

func TestEnvironGetDefaultsToEmpty(t *testing.T) {
	env := Environ{"REQUEST_METHOD": "GET"}

	require.Equal(t, "GET", env.Get("REQUEST_METHOD"))
	require.Equal(t, "", env.Get("SCRIPT_NAME"))
}
