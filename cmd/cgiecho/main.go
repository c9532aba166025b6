package main

import (
	"os"
	"time"

	"github.com/google/uuid"

	"cgiecho/internal/cgi"
	"cgiecho/internal/cli"
	"cgiecho/internal/config"
)

func main() {
	flags := cli.ParseFlags()

	cfg, err := config.LoadConfig()
	if err != nil {
		// The host is waiting on stdout, so a bad config downgrades
		// to defaults rather than aborting without a response
		cfg = config.Default()
		cfg.Logger.Warn("falling back to default config", "error", err)
	}
	logger := cfg.Logger

	env := cgi.OSEnviron()

	if flags.Inspect {
		cli.RunInspect(os.Stdout, env)
		return
	}

	start := time.Now()
	invocationID := uuid.NewString()

	handler := cgi.NewHandler(env, logger)
	envelope := handler.Respond()

	if err := envelope.Write(os.Stdout, cfg.PoweredBy); err != nil {
		// Stdout is gone, nothing more can reach the host
		logger.Error("failed to write response", "invocation_id", invocationID, "error", err)
		os.Exit(1)
	}

	logger.Info("cgi request",
		"invocation_id", invocationID,
		"method", env.Get("REQUEST_METHOD"),
		"path", env.Get("SCRIPT_NAME"),
		"remote_addr", env.Get("REMOTE_ADDR"),
		"status", envelope.StatusCode,
		"duration", time.Since(start),
	)
}
