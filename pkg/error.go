package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors shared by debugme and its subpackages.
// These errors can be tested using errors.Is for reliable error checking,
// including any copies produced by [Error.Wrap] or [Error.With].
var (
	// ErrInvalidBinding is returned when a NAME=VALUE binding given on the
	// command line cannot be split or decoded.
	ErrInvalidBinding = NewError("invalid binding")

	// ErrReadConfig is returned when a configuration file cannot be read or
	// decoded.
	ErrReadConfig = NewError("failed to read configuration")

	// ErrCreateDir is returned when a runtime directory cannot be created.
	ErrCreateDir = NewError("failed to create directory")
)

// Error represents an error with optional causes and structured logging
// attributes. It implements both error and [slog.LogValuer].
type Error struct {
	msg   string
	errs  []error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error returns the message followed by each cause, separated by ": ".
func (e *Error) Error() string {
	part := make([]string, 0, len(e.errs)+1)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	for _, err := range e.errs {
		part = append(part, err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap returns the causes attached with [Error.Wrap].
func (e *Error) Unwrap() []error { return e.errs }

// Is reports whether target is an *Error with the same message, so that a
// wrapped copy still matches its sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.msg == e.msg
}

// Wrap returns a copy of e with the given non-nil errors appended as causes.
// If every argument is nil, Wrap returns nil so the result can be returned
// directly as an error.
func (e *Error) Wrap(errs ...error) error {
	var causes []error

	for _, err := range errs {
		if err != nil {
			causes = append(causes, err)
		}
	}

	if len(causes) == 0 {
		return nil
	}

	return &Error{
		msg:   e.msg,
		errs:  append(e.errs[:len(e.errs):len(e.errs)], causes...),
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		errs:  e.errs,
		attrs: newAttrs,
	}
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+len(e.errs)+1)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	for _, err := range e.errs {
		attrs = append(attrs, slog.String("cause", err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
