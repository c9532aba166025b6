package cgi

import (
	"fmt"
	"io"
)

// Envelope is the response produced by the handler before it is
// serialized to the CGI output format.
type Envelope struct {
	StatusCode  int
	StatusText  string
	ContentType string
	Body        string
}

// Write emits the envelope in the format the CGI host consumes: a
// Status line, headers, a blank line, then the body. Content-Length
// is always the byte length of the body.
func (e Envelope) Write(w io.Writer, poweredBy string) error {
	_, err := fmt.Fprintf(w,
		"Status: %d %s\r\nContent-Type: %s\r\nContent-Length: %d\r\nX-Powered-By: %s\r\n\r\n%s",
		e.StatusCode, e.StatusText, e.ContentType, len(e.Body), poweredBy, e.Body)
	return err
}
