// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// It is the ambient logger of debugme itself (the CLI reports warnings and
// diagnostics through it), and a [Logger] can also be handed to package
// debugme as a logger sink, since its Debug method accepts a rendered report.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("application started", slog.String("version", "1.0.0"))
//	logger.Error("failed to connect", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions use a default logger writing to stderr, which
// is reconfigured with [Config].
//
// # Supported Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured
// level are discarded.
//
// # Time Formatting
//
// Time formatting is configurable using [WithTimeLayout]. You can
// specify any named layout supported by the [time] package (such as
// "RFC3339" or "RFC3339Nano") or provide a custom layout string.
// [TimeLayout] exposes the same name resolution to other packages.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and
// [FormatJSON]. Text output is colorized unless [WithPretty] disables it.
package log
