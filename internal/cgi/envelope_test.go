package cgi

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeWriteFormat(t *testing.T) {
	e := Envelope{
		StatusCode:  200,
		StatusText:  "OK",
		ContentType: "application/json",
		Body:        `{"ok":true}`,
	}

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, "cgiecho/0.1.0"))

	head, body, found := strings.Cut(buf.String(), "\r\n\r\n")
	require.True(t, found, "headers and body must be separated by a blank line")
	require.Equal(t, `{"ok":true}`, body)

	require.Equal(t, []string{
		"Status: 200 OK",
		"Content-Type: application/json",
		"Content-Length: 11",
		"X-Powered-By: cgiecho/0.1.0",
	}, strings.Split(head, "\r\n"))
}

func TestEnvelopeContentLengthCountsBytes(t *testing.T) {
	// Multi-byte body: the length is bytes, not runes
	e := Envelope{
		StatusCode:  200,
		StatusText:  "OK",
		ContentType: "text/plain",
		Body:        "héllo ✓",
	}

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, "cgiecho/0.1.0"))

	head, body, found := strings.Cut(buf.String(), "\r\n\r\n")
	require.True(t, found)

	got := -1
	for _, line := range strings.Split(head, "\r\n") {
		if v, ok := strings.CutPrefix(line, "Content-Length: "); ok {
			n, err := strconv.Atoi(v)
			require.NoError(t, err)
			got = n
		}
	}

	require.Equal(t, len(body), got)
	require.Equal(t, len(e.Body), got)
	require.NotEqual(t, len([]rune(e.Body)), got)
}
