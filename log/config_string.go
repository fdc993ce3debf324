package log

import "strconv"

// String returns the lowercase name of the level, or a signed offset from the
// nearest defined level for intermediate values (e.g. "debug+2").
func (l Level) String() string {
	name := func(base string, val Level) string {
		if l == val {
			return base
		}

		return base + "+" + strconv.Itoa(int(l-val))
	}

	switch {
	case l < LevelTrace:
		return "trace" + strconv.Itoa(int(l-LevelTrace))
	case l < LevelDebug:
		return name("trace", LevelTrace)
	case l < LevelInfo:
		return name("debug", LevelDebug)
	case l < LevelWarn:
		return name("info", LevelInfo)
	case l < LevelError:
		return name("warn", LevelWarn)
	default:
		return name("error", LevelError)
	}
}

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}
