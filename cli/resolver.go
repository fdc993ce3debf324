package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/debugme/pkg"
)

// loadYAML is a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML mapping.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Keys are flag names. Hyphens may be written as underscores, and flags of a
// subcommand may be nested under the command name:
//
//	log-level: debug
//	log_pretty: false
//	report:
//	  tag: TRACE
//	  levels: 2
//
// Command-line flags override config file values. An empty file is valid.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	var values map[string]any

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	return config(values), nil
}

// loadTOML is a [kong.ConfigurationLoader] that reads flag defaults from a
// TOML document laid out like the YAML file read by [loadYAML], with
// command flags in a table named after the command:
//
//	log-level = "debug"
//
//	[report]
//	tag = "TRACE"
func loadTOML(r io.Reader) (kong.Resolver, error) {
	var values map[string]any

	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	return config(values), nil
}

// config implements [kong.Resolver] for YAML and TOML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Prefer a value nested under the flag's command.
	if parent != nil && parent.Command != nil {
		if sub, ok := r[parent.Command.Name].(map[string]any); ok {
			if value, ok := lookup(sub, flag.Name); ok {
				return value, nil
			}
		}
	}

	if value, ok := lookup(r, flag.Name); ok {
		return value, nil
	}

	// Not found: let kong use the default.
	return nil, nil
}

// lookup finds name, or name with hyphens replaced by underscores, in m.
// Scalars are returned in the string form kong parses.
func lookup(m map[string]any, name string) (any, bool) {
	value, ok := m[name]
	if !ok {
		value, ok = m[strings.ReplaceAll(name, "-", "_")]
	}

	if !ok {
		return nil, false
	}

	return flagValue(value), true
}

func flagValue(value any) any {
	switch v := value.(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = fmt.Sprint(flagValue(e))
		}

		return out
	default:
		return v
	}
}
