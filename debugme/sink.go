package debugme

import (
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/debugme/pkg"
)

// ErrSink is returned by [Report] when a sink fails. It wraps the error of
// each failing sink.
var ErrSink = pkg.NewError("debugme sink failed")

// Logger capabilities accepted as a logger sink, in order of preference.
type (
	debugLogger      interface{ Debug(msg string) }
	debugArgsLogger  interface{ Debug(msg string, args ...any) }
	debugAttrsLogger interface {
		Debug(msg string, attrs ...slog.Attr)
	}
	debugErrLogger interface{ Debug(msg string) error }
)

// dispatch writes text to every configured sink. The sinks are independent:
// a failure in one does not prevent the other from being written.
func dispatch(cfg Config, text string) error {
	var errs []error

	if cfg.File != nil {
		errs = append(errs, writeStream(cfg.File, text))
	}

	if cfg.Logger != nil {
		errs = append(errs, writeLogger(cfg.Logger, text))
	}

	return ErrSink.Wrap(errs...)
}

// writeStream writes text as a line, adding a newline only if text does not
// already end with one, and flushes w if it buffers.
func writeStream(w io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if _, err := io.WriteString(w, text); err != nil {
		return err
	}

	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// writeLogger hands text to the first Debug capability logger has.
// Loggers with no such capability are ignored.
func writeLogger(logger any, text string) error {
	switch l := logger.(type) {
	case debugLogger:
		l.Debug(text)
	case debugArgsLogger:
		l.Debug(text)
	case debugAttrsLogger:
		l.Debug(text)
	case debugErrLogger:
		return l.Debug(text)
	}

	return nil
}
