// Package cli contains the command line interface for debugme.
//
// # Usage
//
// The default command reports the bindings given as arguments:
//
//	debugme a=1 items='[x, y]' @owner=ann Limit=10
//	debugme -n 'len(items)' -n a items='[x, y]' a=1
//	debugme -s scope.yaml --no-header --no-time
//
// A binding's value is parsed as YAML. Its name selects the category it is
// bound in: "@name" is an instance field, "@@name" a shared field, a
// capitalized name a constant, and any other name a local.
//
// Nothing is printed unless the DEBUG_ME environment variable enables
// reporting, or --force is given.
//
// # Configuration Loader
//
// Flag defaults are read from config.yaml in the user configuration
// directory ([loadYAML]). Keys are flag names, and the flags of a command
// may be nested under the command's name:
//
//	log-level: debug
//	report:
//	  tag: TRACE
//	  color: true
//
// The same layout is read from config.toml, and kong's JSON loader reads
// config.json. The init command writes the current flag values to
// config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o debugme .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/debugme/pprof)
package cli
