package cgi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const headerVarPrefix = "HTTP_"

// timestampLayout keeps the sub-second digits present even on a
// whole second, so the field shape never changes between responses.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// RequestInfo is the JSON document echoed back to the caller.
type RequestInfo struct {
	Timestamp      string            `json:"timestamp"`
	Method         string            `json:"method"`
	Path           string            `json:"path"`
	ServerSoftware string            `json:"server_software"`
	ServerProtocol string            `json:"server_protocol"`
	QueryString    string            `json:"query_string"`
	RemoteAddr     string            `json:"remote_addr"`
	HTTPHeaders    map[string]string `json:"http_headers"`
}

// Handler turns one set of CGI variables into a response envelope.
type Handler struct {
	env    Environ
	logger *slog.Logger

	// Injected so tests can pin the clock and force the failure path
	now     func() time.Time
	marshal func(v any) ([]byte, error)
}

func NewHandler(env Environ, logger *slog.Logger) *Handler {
	return &Handler{
		env:    env,
		logger: logger,
		now:    time.Now,
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
	}
}

// Handle builds the envelope for this invocation. A returned error
// means an internal failure, the caller maps it to a 500 via Respond.
func (h *Handler) Handle() (Envelope, error) {
	method := h.env.Get("REQUEST_METHOD")
	if method != "GET" {
		h.logger.Warn("rejecting unsupported method", "method", method)
		return Envelope{
			StatusCode:  405,
			StatusText:  "Method Not Allowed",
			ContentType: "text/plain",
			Body:        "Only GET method is supported",
		}, nil
	}

	info := RequestInfo{
		Timestamp:      h.now().UTC().Format(timestampLayout),
		Method:         method,
		Path:           h.env.Get("SCRIPT_NAME"),
		ServerSoftware: h.env.Get("SERVER_SOFTWARE"),
		ServerProtocol: h.env.Get("SERVER_PROTOCOL"),
		QueryString:    h.env.Get("QUERY_STRING"),
		RemoteAddr:     h.env.Get("REMOTE_ADDR"),
		HTTPHeaders:    RequestHeaders(h.env),
	}

	body, err := h.marshal(info)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to serialize request info: %w", err)
	}

	return Envelope{
		StatusCode:  200,
		StatusText:  "OK",
		ContentType: "application/json",
		Body:        string(body),
	}, nil
}

// Respond is the outermost boundary: every failure becomes a 500
// envelope so the host always receives a well-formed response.
func (h *Handler) Respond() Envelope {
	envelope, err := h.Handle()
	if err != nil {
		h.logger.Error("internal failure while handling request", "error", err)
		return Envelope{
			StatusCode:  500,
			StatusText:  "Internal Server Error",
			ContentType: "text/plain",
			Body:        "CGI Error: " + err.Error(),
		}
	}
	return envelope
}

// RequestHeaders derives the request header map from the HTTP_*
// variables: HTTP_ACCEPT_LANGUAGE becomes accept-language. If two
// variables collide after the transform, the last one read wins.
func RequestHeaders(env Environ) map[string]string {
	headers := make(map[string]string)
	for name, value := range env {
		if !strings.HasPrefix(name, headerVarPrefix) {
			continue
		}
		headers[headerName(name)] = value
	}
	return headers
}

func headerName(varName string) string {
	name := strings.TrimPrefix(varName, headerVarPrefix)
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}
