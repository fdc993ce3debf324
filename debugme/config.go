package debugme

import (
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strings"
	"time"

	"fortio.org/safecast"

	"github.com/ardnew/debugme/log"
)

// FormatTime formats the timestamp placed in front of the tag.
type FormatTime func(time.Time) string

// DefaultTag is the tag placed in front of every report line.
const DefaultTag = "DEBUG"

// DefaultTimeLayout renders timestamps with microsecond resolution.
const DefaultTimeLayout = "2006-01-02 15:04:05.000000"

// Config is the fully resolved configuration of a single report.
//
// A Config is a value: [Resolve] builds a fresh one for every call and
// nothing in this package modifies it afterwards.
type Config struct {
	// File is the stream sink. A nil File disables the stream sink.
	File io.Writer
	// Logger is the logger sink. It is accepted if it has a Debug method
	// with one of the signatures listed in [Report]; otherwise it is ignored.
	Logger any
	// TimeFormat formats the timestamp when Time is set.
	TimeFormat FormatTime
	// Now returns the timestamp of the report.
	Now func() time.Time
	// Tag follows the timestamp on every line.
	Tag string
	// Levels is the number of caller frames reported beyond the call site.
	Levels int
	// Time includes a timestamp in the line prefix.
	Time bool
	// Header includes the call-site line and any backtrace lines.
	Header bool
	// Locals, Fields, Shared, and Constants select the binding categories
	// swept when the selector names nothing.
	Locals    bool
	Fields    bool
	Shared    bool
	Constants bool
}

// DefaultConfig returns the documented defaults: tag [DefaultTag], a
// [DefaultTimeLayout] timestamp, the header, no extra frames, every binding
// category, no logger sink, and [os.Stdout] as the stream sink.
func DefaultConfig() Config {
	return Config{
		File:       os.Stdout,
		TimeFormat: makeFormatTime(DefaultTimeLayout),
		Now:        time.Now,
		Tag:        DefaultTag,
		Time:       true,
		Header:     true,
		Locals:     true,
		Fields:     true,
		Shared:     true,
		Constants:  true,
	}
}

// Options is the mapping form of report configuration. Recognized keys are
// tag, time, strftime, header, levels, lvar, ivar, cvar, cconst, logger, and
// file. Unrecognized keys and values of an unexpected type are ignored.
type Options map[string]any

// Resolve merges input over [DefaultConfig]. It never fails.
//
// The input may be nil (defaults), a [Config] (used as-is), an [Option] or
// []Option (applied in order), an [Options] or map[string]any (merged key by
// key), or any other non-empty value, which is shorthand for the tag.
func Resolve(input any) Config {
	return resolveOver(DefaultConfig(), input)
}

// resolveOver merges input over def.
func resolveOver(def Config, input any) Config {
	switch in := input.(type) {
	case nil:
		return def

	case Config:
		return in

	case *Config:
		if in == nil {
			return def
		}

		return *in

	case Option:
		return apply(def, in)

	case []Option:
		return apply(def, in...)

	case Options:
		return in.merge(def)

	case map[string]any:
		return Options(in).merge(def)

	case string:
		if in == "" {
			return def
		}

		def.Tag = in

		return def

	default:
		def.Tag = fmt.Sprint(in)

		return def
	}
}

// merge applies each recognized key of o to c.
func (o Options) merge(c Config) Config {
	for key, val := range o {
		switch strings.ToLower(key) {
		case "tag":
			if val != nil {
				c.Tag = fmt.Sprint(val)
			}

		case "time":
			setBool(&c.Time, val)

		case "strftime":
			switch v := val.(type) {
			case string:
				c.TimeFormat = makeFormatTime(v)
			case FormatTime:
				c.TimeFormat = v
			case log.FormatTime:
				c.TimeFormat = FormatTime(v)
			case func(time.Time) string:
				c.TimeFormat = v
			}

		case "header":
			setBool(&c.Header, val)

		case "levels":
			if n, ok := toInt(val); ok {
				c.Levels = max(0, n)
			}

		case "lvar":
			setBool(&c.Locals, val)

		case "ivar":
			setBool(&c.Fields, val)

		case "cvar":
			setBool(&c.Shared, val)

		case "cconst":
			setBool(&c.Constants, val)

		case "logger":
			c.Logger = val

		case "file":
			switch v := val.(type) {
			case nil:
				c.File = nil
			case io.Writer:
				c.File = v
			}
		}
	}

	return c
}

// prefix returns the text in front of every line: the formatted timestamp
// (if enabled and non-empty), a space, and the tag.
func (c Config) prefix() string {
	if !c.Time || c.TimeFormat == nil {
		return c.Tag
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	stamp := c.TimeFormat(now())
	if stamp == "" {
		return c.Tag
	}

	return stamp + " " + c.Tag
}

// WithTag returns a functional option that sets the tag.
func WithTag(tag string) Option {
	return func(c Config) Config {
		c.Tag = tag

		return c
	}
}

// WithTime returns a functional option that controls the timestamp.
func WithTime(enable bool) Option {
	return func(c Config) Config {
		c.Time = enable

		return c
	}
}

// WithTimeLayout returns a functional option that sets the timestamp layout.
// Named layouts understood by [log.TimeLayout] (for example "RFC3339" or
// "micro") are accepted; "none" or an empty layout yields no timestamp.
func WithTimeLayout(layout string) Option {
	format := makeFormatTime(layout)

	return func(c Config) Config {
		c.TimeFormat = format

		return c
	}
}

// WithTimeFormat returns a functional option that sets a custom timestamp
// formatter.
func WithTimeFormat(format FormatTime) Option {
	return func(c Config) Config {
		c.TimeFormat = format

		return c
	}
}

// WithHeader returns a functional option that controls the call-site header.
func WithHeader(enable bool) Option {
	return func(c Config) Config {
		c.Header = enable

		return c
	}
}

// WithLevels returns a functional option that sets the number of extra caller
// frames reported after the header. Negative values are treated as 0.
func WithLevels(levels int) Option {
	return func(c Config) Config {
		c.Levels = max(0, levels)

		return c
	}
}

// WithLocals returns a functional option that controls the local variable
// sweep.
func WithLocals(enable bool) Option {
	return func(c Config) Config {
		c.Locals = enable

		return c
	}
}

// WithFields returns a functional option that controls the instance field
// sweep.
func WithFields(enable bool) Option {
	return func(c Config) Config {
		c.Fields = enable

		return c
	}
}

// WithShared returns a functional option that controls the shared field
// sweep.
func WithShared(enable bool) Option {
	return func(c Config) Config {
		c.Shared = enable

		return c
	}
}

// WithConstants returns a functional option that controls the constant sweep.
func WithConstants(enable bool) Option {
	return func(c Config) Config {
		c.Constants = enable

		return c
	}
}

// WithLogger returns a functional option that sets the logger sink.
func WithLogger(logger any) Option {
	return func(c Config) Config {
		c.Logger = logger

		return c
	}
}

// WithFile returns a functional option that sets the stream sink.
// A nil writer disables it.
func WithFile(w io.Writer) Option {
	return func(c Config) Config {
		c.File = w

		return c
	}
}

// WithClock returns a functional option that sets the clock used for
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(c Config) Config {
		c.Now = now

		return c
	}
}

func makeFormatTime(layout string) FormatTime {
	return FormatTime(log.MakeFormatTime(layout))
}

func setBool(dst *bool, val any) {
	if b, ok := val.(bool); ok {
		*dst = b
	}
}

// toInt converts any integer kind, or a float with no fractional part,
// to int. Unsigned values beyond the range of int saturate.
func toInt(val any) (int, bool) {
	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := safecast.Conv[int](rv.Int())

		return n, err == nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		n, err := safecast.Conv[int](rv.Uint())
		if err != nil {
			return math.MaxInt, true
		}

		return n, true

	case reflect.Float32, reflect.Float64:
		n, err := safecast.Convert[int](rv.Float())

		return n, err == nil

	default:
		return 0, false
	}
}
