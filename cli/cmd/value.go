package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/debugme/debugme"
	"github.com/ardnew/debugme/pkg"
)

// parseBinding splits a "NAME=VALUE" argument and decodes VALUE as YAML, so
// that "n=1", "s=hi", "l=[1, 2]", and "m={k: v}" bind an integer, a string,
// a list, and a map. A VALUE that is not valid YAML is bound verbatim as a
// string, and an empty VALUE binds nil.
func parseBinding(arg string) (name string, value any, err error) {
	name, raw, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)

	if !ok || name == "" {
		return "", nil, pkg.ErrInvalidBinding.With(slog.String("binding", arg))
	}

	return name, decodeValue(raw), nil
}

func decodeValue(raw string) any {
	var v any

	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}

	return v
}

// bind adds name to the category its spelling implies: "@@name" is a shared
// field, "@name" an instance field, a capitalized name (including qualified
// names such as "Mod::Name") a constant, and anything else a local.
func bind(sc *debugme.Scope, name string, value any) *debugme.Scope {
	switch {
	case strings.HasPrefix(name, debugme.SharedSigil):
		return sc.Shared(name, value)
	case strings.HasPrefix(name, debugme.FieldSigil):
		return sc.Field(name, value)
	case isConstName(name):
		return sc.Const(name, value)
	default:
		return sc.Local(name, value)
	}
}

func isConstName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}

// readBindings decodes each YAML document in r as a mapping of names to
// values and binds them in document order.
func readBindings(sc *debugme.Scope, src Source) (*debugme.Scope, error) {
	dec := yaml.NewDecoder(src)

	for {
		var doc yaml.MapSlice

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return sc, nil
		}

		if err != nil {
			return sc, ErrReadSource.With(slog.String("source", src.Name)).Wrap(err)
		}

		for _, item := range doc {
			sc = bind(sc, fmt.Sprint(item.Key), item.Value)
		}
	}
}
