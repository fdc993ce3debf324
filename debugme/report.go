package debugme

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/ardnew/debugme/log"
)

// BacktraceName is a pseudo-name that resolves to the caller's stack, from
// the call site outward, as a list of frame descriptions. A binding of the
// same name in the scope takes precedence.
const BacktraceName = "backtrace"

// Selector names the bindings to report. It may return a name, a slice of
// names (nested slices are flattened), or nothing. Nil values and empty
// names are dropped; other non-string values are formatted with
// [fmt.Sprint]. A Selector that names nothing selects the automatic sweep.
type Selector func() any

// Names returns a Selector for the given names.
func Names(names ...string) Selector {
	return func() any { return names }
}

// Report renders the bindings of sc at the caller's location and writes the
// result to the sinks configured by input (see [Resolve]).
//
// If reporting is disabled (see [Enabled]), Report returns immediately with
// ok false and does not call sel. Otherwise ok is true and text is the
// rendered block, which may be empty. The block consists of:
//
//   - the header "Source: <file>:<line>:in <function>" if Config.Header,
//     followed by Config.Levels "Source: FROM (NN) : <frame>" lines;
//   - one "<name> -=> <value>" line per binding, where the bindings are the
//     names returned by sel, or the automatic sweep of sc if sel is nil or
//     names nothing.
//
// Every line begins with the prefix "[timestamp ]tag".
//
// The stream sink receives text as a line and is flushed. The logger sink
// receives text through the first of these methods it has:
// Debug(string), Debug(string, ...any), Debug(string, ...slog.Attr), or
// Debug(string) error. A failing sink does not affect the other sink or the
// returned text; its error is wrapped in an [ErrSink] chain.
func Report(input any, sc *Scope, sel Selector) (text string, ok bool, err error) {
	return report(input, sc, sel)
}

// Me is the inline form of [Report]. It returns only the rendered text,
// which is empty when reporting is disabled.
func Me(input any, sc *Scope, sel Selector) string {
	text, _, _ := report(input, sc, sel)

	return text
}

// LogMe reports without the header, using msg as the tag. Options given in
// input are applied on top, so they may set another tag or turn the header
// back on.
func LogMe(msg string, input any, sc *Scope, sel Selector) string {
	text, _, _ := report(logMeConfig{msg: msg, input: input}, sc, sel)

	return text
}

type logMeConfig struct {
	input any
	msg   string
}

// report must be called directly by each exported entry point: the call
// site is found at a fixed depth of 2 frames above it.
func report(input any, sc *Scope, sel Selector) (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	var cfg Config

	if in, ok := input.(logMeConfig); ok {
		base := DefaultConfig()
		base.Tag, base.Header = in.msg, false
		cfg = resolveOver(base, in.input)
	} else {
		cfg = Resolve(input)
	}

	prefix := cfg.prefix()
	names := selected(sel)

	levels := 0
	if cfg.Header {
		levels = cfg.Levels
	}

	pseudo := slices.Contains(names, BacktraceName)
	if pseudo {
		if _, bound := sc.Lookup(BacktraceName); bound {
			pseudo = false
		}
	}

	depth := levels
	if pseudo {
		depth = max(depth, maxFrames)
	}

	// 0=Callers' caller (report), 1=exported entry point, 2=user code
	site, trace := Callers(2, depth)

	bindings := sc.Bindings(cfg, names)

	for i, b := range bindings {
		switch {
		case pseudo && b.Name == BacktraceName:
			bindings[i].Value = framesText(append([]Frame{site}, trace...))

		case IsUndefined(b.Value):
			log.TraceContext(log.DefaultContextProvider(), "undefined binding",
				slog.String("name", b.Name),
				slog.String("source", site.String()),
			)
		}
	}

	var header *Frame
	if cfg.Header {
		header = &site
	}

	text := render(prefix, header, trace[:min(levels, len(trace))], bindings)

	err := dispatch(cfg, text)
	if err != nil {
		log.DebugContext(log.DefaultContextProvider(), "report dispatch failed",
			slog.Any("error", err),
			slog.String("source", site.String()),
		)
	}

	return text, true, err
}

// selected flattens the value returned by sel into a list of names.
func selected(sel Selector) []string {
	if sel == nil {
		return nil
	}

	var names []string

	var walk func(v any)

	walk = func(v any) {
		switch v := v.(type) {
		case nil:
		case string:
			if v != "" {
				names = append(names, v)
			}
		case []string:
			for _, s := range v {
				walk(s)
			}
		case []any:
			for _, s := range v {
				walk(s)
			}
		case []byte:
			walk(string(v))
		case fmt.Stringer:
			walk(v.String())
		default:
			rv := reflect.ValueOf(v)

			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				for i := range rv.Len() {
					walk(rv.Index(i).Interface())
				}
			case reflect.String:
				walk(rv.String())
			case reflect.Pointer, reflect.Interface:
				if !rv.IsNil() {
					walk(rv.Elem().Interface())
				}
			default:
				walk(fmt.Sprint(v))
			}
		}
	}

	walk(sel())

	return names
}
