package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/debugme/log"
)

func Example_basic() {
	logger := log.Make(os.Stderr)
	logger.Info("application started", slog.String("version", "1.0.0"))
}

func Example_configuration() {
	logger := log.Make(os.Stderr,
		log.WithLevel(log.LevelDebug),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Debug("debug message with caller info")
}

func Example_plainText() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Warn("unresolved name", slog.String("name", "zzz"))
	// Output:
	// level=WARN msg="unresolved name" name=zzz
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stderr, log.WithFormat(log.FormatJSON))
	logger.InfoContext(ctx, "processing request with context")
}
