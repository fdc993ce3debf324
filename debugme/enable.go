package debugme

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/ardnew/debugme/pkg"
)

// enabled gates every report. It is initialized once from the environment
// and may be toggled at any time with [SetEnabled]; the last write wins.
var enabled atomic.Bool

func init() {
	enabled.Store(LookupEnabled(os.LookupEnv))
}

// Enabled reports whether reporting is currently enabled.
func Enabled() bool { return enabled.Load() }

// SetEnabled enables or disables reporting process-wide and returns the
// previous setting.
func SetEnabled(enable bool) (previous bool) { return enabled.Swap(enable) }

// LookupEnabled derives the initial enable flag from the environment variable
// named by [pkg.EnvEnable] using the given lookup function (typically
// [os.LookupEnv]). An unset variable enables reporting.
func LookupEnabled(lookup func(string) (string, bool)) bool {
	value, ok := lookup(pkg.EnvEnable)
	if !ok {
		return true
	}

	return ParseEnabled(value)
}

// ParseEnabled interprets value as an enable flag.
//
// The tokens "0", "false", "no", "off" (case-insensitive) and the empty
// string disable reporting. The tokens "1", "true", "yes", "on", and any
// other value enable it.
func ParseEnabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
