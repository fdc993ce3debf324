package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/debugme/debugme"
	"github.com/ardnew/debugme/log"
	"github.com/ardnew/debugme/pkg"
)

// Report prints a debug report of bindings given on the command line or read
// from source files.
type Report struct {
	Bindings []string `arg:"" help:"Binding as NAME=VALUE, where VALUE is YAML. The name's spelling selects its category (@field, @@shared, Const, local)." name:"binding" optional:""`

	Select []string `help:"Name or expression to report, in order (repeatable). Reports every binding if unset." placeholder:"NAME"       short:"n"`
	Field  []string `help:"Bind an instance field."                                                                placeholder:"NAME=VALUE"`
	Shared []string `help:"Bind a shared field."                                                                   placeholder:"NAME=VALUE"`
	Const  []string `help:"Bind a constant."                                                                       placeholder:"NAME=VALUE"`

	Tag      string `default:"${reportTag}"        help:"Tag following the timestamp."`
	Time     bool   `default:"true"                help:"Include a timestamp."                     negatable:""`
	Strftime string `default:"${reportTimeLayout}" help:"Timestamp layout (a Go layout or a name such as RFC3339)."`
	Header   bool   `default:"true"                help:"Include the source header."               negatable:""`
	Levels   int    `default:"0"                   help:"Extra caller frames after the header."`
	Lvar     bool   `default:"true"                help:"Report locals when nothing is selected."  negatable:""`
	Ivar     bool   `default:"true"                help:"Report fields when nothing is selected."  negatable:""`
	Cvar     bool   `default:"true"                help:"Report shared fields when nothing is selected." negatable:""`
	Cconst   bool   `default:"true"                help:"Report constants when nothing is selected." negatable:""`
	Color    bool   `default:"false"               help:"Colorize output."                         negatable:""`
	Force    bool   `help:"Report even if ${reportEnv} disables reporting." short:"F"`
}

// Vars returns the kong variables used by the report flags.
func (Report) Vars() kong.Vars {
	return kong.Vars{
		"reportTag":        debugme.DefaultTag,
		"reportTimeLayout": debugme.DefaultTimeLayout,
		"reportEnv":        pkg.EnvEnable,
	}
}

// Run executes the report command.
func (r *Report) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	sc, err := r.scope(ctx)
	if err != nil {
		return err
	}

	if r.Force {
		defer debugme.SetEnabled(debugme.SetEnabled(true))
	}

	out := outputFrom(ctx)

	var file io.Writer = out
	if r.Color {
		file = nil
	}

	text, ok, err := debugme.Report(r.options(file), sc, debugme.Names(r.Select...))
	if !ok {
		value, set := os.LookupEnv(pkg.EnvEnable)

		log.InfoContext(ctx, "reporting disabled",
			slog.String("env", pkg.EnvEnable),
			slog.String("value", value),
			slog.Bool("set", set),
		)

		return nil
	}

	if err != nil {
		return ErrReport.Wrap(err)
	}

	if r.Color && text != "" {
		if _, err := io.WriteString(out, colorize(out, r.Tag, text)); err != nil {
			return ErrReport.Wrap(err)
		}
	}

	r.warnUndefined(ctx, sc)

	return nil
}

// scope binds the source files first, then the positional bindings, then
// the explicit category flags, so later bindings replace earlier ones.
func (r *Report) scope(ctx context.Context) (*debugme.Scope, error) {
	sc := debugme.NewScope()

	for _, src := range sourcesFrom(ctx) {
		var err error

		sc, err = readBindings(sc, src)
		src.Close()

		if err != nil {
			return nil, err
		}
	}

	for _, set := range []struct {
		args []string
		bind func(*debugme.Scope, string, any) *debugme.Scope
	}{
		{r.Bindings, bind},
		{r.Field, (*debugme.Scope).Field},
		{r.Shared, (*debugme.Scope).Shared},
		{r.Const, (*debugme.Scope).Const},
	} {
		for _, arg := range set.args {
			name, value, err := parseBinding(arg)
			if err != nil {
				return nil, err
			}

			sc = set.bind(sc, name, value)
		}
	}

	log.TraceContext(ctx, "scope", slog.Any("names", sc.Names()))

	return sc, nil
}

func (r *Report) options(file io.Writer) []debugme.Option {
	return []debugme.Option{
		debugme.WithTag(r.Tag),
		debugme.WithTime(r.Time),
		debugme.WithTimeLayout(r.Strftime),
		debugme.WithHeader(r.Header),
		debugme.WithLevels(r.Levels),
		debugme.WithLocals(r.Lvar),
		debugme.WithFields(r.Ivar),
		debugme.WithShared(r.Cvar),
		debugme.WithConstants(r.Cconst),
		debugme.WithFile(file),
	}
}

// warnUndefined logs each selected name that does not resolve, with the
// bound names that most resemble it.
func (r *Report) warnUndefined(ctx context.Context, sc *debugme.Scope) {
	for _, name := range r.Select {
		if name == debugme.BacktraceName {
			continue
		}

		if _, ok := sc.Lookup(name); ok {
			continue
		}

		log.WarnContext(ctx, "undefined name",
			slog.String("name", name),
			slog.Any("suggest", suggest(name, sc.Names(), maxSuggestions)),
		)
	}
}
