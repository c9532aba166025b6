package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultPoweredBy = "cgiecho/0.1.0"

type Config struct {
	// PoweredBy is the X-Powered-By marker sent on every response
	PoweredBy string `env:"CGIECHO_POWERED_BY"`

	// LogFile receives the logs; empty means stderr. Stdout is never
	// a log destination, the host reads it as the response.
	LogFile string `env:"CGIECHO_LOG_FILE"`

	logLevel string `env:"CGIECHO_LOG_LEVEL" default:"info"`
	Logger   *slog.Logger
}

func LoadConfig() (*Config, error) {
	// We will manually validate the config values
	// We ignore the error as the .env file is optional
	_ = godotenv.Load()

	allowedLogLevels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	logLevel := getOrDefault("CGIECHO_LOG_LEVEL", "info")
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return nil, fmt.Errorf("invalid log level: %s", logLevel)
	}

	logFile := getOrDefault("CGIECHO_LOG_FILE", "")
	sink, err := openLogSink(logFile)
	if err != nil {
		return nil, err
	}

	return &Config{
		PoweredBy: getOrDefault("CGIECHO_POWERED_BY", defaultPoweredBy),
		LogFile:   logFile,
		logLevel:  logLevel,
		Logger:    setupLogger(sink, allowedLogLevels[logLevel]),
	}, nil
}

// Default returns the configuration used when LoadConfig fails. The
// host is waiting on stdout for a response, so a broken configuration
// downgrades to defaults instead of aborting the process.
func Default() *Config {
	return &Config{
		PoweredBy: defaultPoweredBy,
		logLevel:  "info",
		Logger:    setupLogger(os.Stderr, slog.LevelInfo),
	}
}

// Utility methods

func openLogSink(path string) (io.Writer, error) {
	if path == "" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}

// setupLogger creates the logger for a single CGI invocation
func setupLogger(w io.Writer, l slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     l,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source := a.Value.Any().(*slog.Source)
				a.Value = slog.StringValue(source.File + ":" + strconv.Itoa(source.Line))
			}
			return a
		},
	}

	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler)
}

// getOrDefault returns the value of the environment variable with the given key
// or the default value if the variable is not set
func getOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
