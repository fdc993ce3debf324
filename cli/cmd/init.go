package cmd

import (
	"context"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/debugme/log"
	"github.com/ardnew/debugme/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, i.document(ktx),
		yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	err = os.WriteFile(confPath, data, 0o600)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// document collects the application flags at the top level and each
// command's flags in a mapping under the command's name. The command being
// run is left out.
func (i *Init) document(ktx *kong.Context) yaml.MapSlice {
	doc := i.flags(ktx, ktx.Model.Flags)

	for _, node := range ktx.Model.Children {
		if node.Type != kong.CommandNode || node.Hidden || node == ktx.Selected() {
			continue
		}

		if sub := i.flags(ktx, node.Flags); len(sub) > 0 {
			doc = append(doc, yaml.MapItem{Key: node.Name, Value: sub})
		}
	}

	return doc
}

func (i *Init) flags(ktx *kong.Context, flags []*kong.Flag) yaml.MapSlice {
	prefixIgnore := []string{"help", profile.Tag}

	var out yaml.MapSlice

	for _, flag := range flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if val := flagValue(ktx.FlagValue(flag)); val != nil {
			out = append(out, yaml.MapItem{Key: flag.Name, Value: val})
		}
	}

	return out
}

// flagValue returns the YAML value for a flag, or nil if it is unset or
// empty.
func flagValue(val any) any {
	if val == nil {
		return nil
	}

	v := reflect.ValueOf(val)

	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return nil
		}

		return v.String()

	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}

		return val

	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return nil

	default:
		return val
	}
}
