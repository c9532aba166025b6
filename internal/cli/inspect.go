package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"

	"cgiecho/internal/cgi"
)

// wellKnownVars are the CGI variables the echo response reads directly.
var wellKnownVars = []string{
	"REQUEST_METHOD",
	"SCRIPT_NAME",
	"SERVER_SOFTWARE",
	"SERVER_PROTOCOL",
	"QUERY_STRING",
	"REMOTE_ADDR",
}

// RenderInspect builds the -inspect report: which well-known CGI
// variables the host populated, and which request headers would be
// echoed back for this environment.
func RenderInspect(env cgi.Environ) string {
	var b strings.Builder

	b.WriteString(color.Bold.Sprint("cgiecho environment inspection\n"))
	b.WriteString("══════════════════════════════════════════════════════\n")

	b.WriteString(color.Bold.Sprint("CGI VARIABLES\n"))
	for _, name := range wellKnownVars {
		if v := env.Get(name); v != "" {
			b.WriteString(fmt.Sprintf("   %s %s=%s\n", color.Green.Sprint("✓"), name, v))
		} else {
			b.WriteString(fmt.Sprintf("   %s %s is not set\n", color.Yellow.Sprint("!"), name))
		}
	}
	b.WriteString("\n")

	b.WriteString(color.Bold.Sprint("REQUEST HEADERS\n"))
	headers := cgi.RequestHeaders(env)
	if len(headers) == 0 {
		b.WriteString("   none (no HTTP_* variables set)\n")
		return b.String()
	}

	// Sort so the report doesn't change between runs (maps pseudo random order)
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString(fmt.Sprintf("   %s: %s\n", name, headers[name]))
	}

	return b.String()
}

func RunInspect(w io.Writer, env cgi.Environ) {
	fmt.Fprint(w, RenderInspect(env))
}
