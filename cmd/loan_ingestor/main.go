package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

const serviceName = "loan_ingestor"

type loggerKey struct{}

func main() {
	log := newLogger(os.Stdout, os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))

	os.Exit(run(log, os.Args))
}

// run executes the command until it returns or a termination signal arrives.
func run(log *slog.Logger, args []string) int {
	ctx, stop := signal.NotifyContext(
		context.WithValue(context.Background(), loggerKey{}, log),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := cmd().Run(ctx, args); err != nil {
		log.Error("service stopped with error", slog.String("err", err.Error()))
		return 1
	}

	return 0
}

// newLogger builds the service logger. format is "json" or text; level is
// parsed like "info" or "WARN" and defaults to debug.
func newLogger(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(level)}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("version", version),
	)
}

func logLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelDebug
	}

	return level
}
