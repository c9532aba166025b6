package cgi

import (
	"os"
	"strings"
)

// Environ is a snapshot of the CGI variables handed to a single
// invocation. The handler reads from it instead of the process
// environment directly, so tests can construct one from a literal.
type Environ map[string]string

// OSEnviron snapshots the environment the CGI host populated for
// this process.
func OSEnviron() Environ {
	vars := os.Environ()
	env := make(Environ, len(vars))
	for _, kv := range vars {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

// Get returns the value for key, or the empty string if the host
// did not set it.
func (e Environ) Get(key string) string {
	return e[key]
}
