package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/debugme/debugme"
	"github.com/ardnew/debugme/pkg"
)

func setEnabled(t *testing.T, enable bool) {
	t.Helper()

	prev := debugme.SetEnabled(enable)
	t.Cleanup(func() { debugme.SetEnabled(prev) })
}

// plainReport returns a Report with the flag defaults, without timestamp or
// header.
func plainReport() Report {
	return Report{
		Tag:      debugme.DefaultTag,
		Strftime: debugme.DefaultTimeLayout,
		Lvar:     true,
		Ivar:     true,
		Cvar:     true,
		Cconst:   true,
	}
}

func runReport(t *testing.T, ctx context.Context, r Report) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	err := r.Run(WithOutput(ctx, &buf))

	return buf.String(), err
}

func TestReportRun(t *testing.T) {
	setEnabled(t, true)

	tests := []struct {
		name  string
		setup func(*Report)
		want  string
	}{
		{
			name:  "positional",
			setup: func(r *Report) { r.Bindings = []string{"a=1", "b=two"} },
			want:  "DEBUG a -=> 1\nDEBUG b -=> \"two\"\n",
		},
		{
			name: "categories",
			setup: func(r *Report) {
				r.Bindings = []string{"Limit=3", "@@s=x", "a=1"}
				r.Field = []string{"f=true"}
			},
			want: "DEBUG a -=> 1\n" +
				"DEBUG @f -=> true\n" +
				"DEBUG @@s -=> \"x\"\n" +
				"DEBUG Limit -=> 3\n",
		},
		{
			name: "explicit category flags",
			setup: func(r *Report) {
				r.Shared = []string{"s=1"}
				r.Const = []string{"lower=2"}
			},
			want: "DEBUG @@s -=> 1\nDEBUG lower -=> 2\n",
		},
		{
			name: "selected",
			setup: func(r *Report) {
				r.Bindings = []string{"a=1", "l=[1, 2]"}
				r.Select = []string{"len(l)", "a", "missing"}
			},
			want: "DEBUG len(l) -=> 2\nDEBUG a -=> 1\nDEBUG missing -=> <undefined>\n",
		},
		{
			name: "locals off",
			setup: func(r *Report) {
				r.Bindings = []string{"a=1", "@b=2"}
				r.Lvar = false
			},
			want: "DEBUG @b -=> 2\n",
		},
		{
			name: "tag",
			setup: func(r *Report) {
				r.Bindings = []string{"a=1"}
				r.Tag = "CHECK"
			},
			want: "CHECK a -=> 1\n",
		},
		{
			name:  "later binding replaces",
			setup: func(r *Report) { r.Bindings = []string{"a=1", "b=2", "a=3"} },
			want:  "DEBUG a -=> 3\nDEBUG b -=> 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := plainReport()
			tt.setup(&r)

			got, err := runReport(t, context.Background(), r)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if got != tt.want {
				t.Errorf("output =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestReportRun_Header(t *testing.T) {
	setEnabled(t, true)

	r := plainReport()
	r.Header = true
	r.Bindings = []string{"a=1"}

	got, err := runReport(t, context.Background(), r)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output =\n%s", got)
	}

	if !strings.HasPrefix(lines[0], "DEBUG Source: ") ||
		!strings.Contains(lines[0], "report.go:") ||
		!strings.HasSuffix(lines[0], ".(*Report).Run") {
		t.Errorf("header = %q", lines[0])
	}
}

func TestReportRun_Disabled(t *testing.T) {
	setEnabled(t, false)

	r := plainReport()
	r.Bindings = []string{"a=1"}

	got, err := runReport(t, context.Background(), r)
	if err != nil || got != "" {
		t.Errorf("Run() = %q, %v; want no output", got, err)
	}

	r.Force = true

	got, err = runReport(t, context.Background(), r)
	if err != nil || got != "DEBUG a -=> 1\n" {
		t.Errorf("forced Run() = %q, %v", got, err)
	}

	if debugme.Enabled() {
		t.Error("forced Run() left reporting enabled")
	}
}

func TestReportRun_InvalidBinding(t *testing.T) {
	setEnabled(t, true)

	r := plainReport()
	r.Bindings = []string{"=1"}

	if _, err := runReport(t, context.Background(), r); !errors.Is(err, pkg.ErrInvalidBinding) {
		t.Errorf("Run() error = %v, want %v", err, pkg.ErrInvalidBinding)
	}
}

func TestReportRun_Sources(t *testing.T) {
	setEnabled(t, true)

	dir := t.TempDir()
	path := filepath.Join(dir, "scope.yaml")

	if err := os.WriteFile(path, []byte("a: 1\nitems: [x, y]\n---\n\"@owner\": ann\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := plainReport()
	r.Bindings = []string{"a=2"}
	r.Select = []string{"a", "items[1]", "@owner"}

	ctx := WithSources(context.Background(), []string{path})

	got, err := runReport(t, ctx, r)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "DEBUG a -=> 2\nDEBUG items[1] -=> \"y\"\nDEBUG @owner -=> \"ann\"\n"
	if got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestReportRun_BadSource(t *testing.T) {
	setEnabled(t, true)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("- a\n- b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runReport(t, WithSources(context.Background(), []string{path}), plainReport())
	if !errors.Is(err, ErrReadSource) {
		t.Errorf("Run() error = %v, want %v", err, ErrReadSource)
	}
}

func TestReportRun_Color(t *testing.T) {
	setEnabled(t, true)

	r := plainReport()
	r.Color = true
	r.Bindings = []string{"a=1"}

	got, err := runReport(t, context.Background(), r)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if strings.Count(got, "a -=> 1") != 1 || strings.Count(got, "\n") != 1 {
		t.Errorf("output = %q, want a single report line", got)
	}
}

func TestColorize_PlainWriter(t *testing.T) {
	var buf bytes.Buffer

	text := "12:00 DEBUG Source: main.go:1:in main.main\n12:00 DEBUG a -=> 1\nunrelated\n"

	if got := colorize(&buf, "DEBUG", text); got != text {
		t.Errorf("colorize() =\n%q\nwant\n%q", got, text)
	}
}

func TestEnvRun(t *testing.T) {
	t.Setenv(pkg.EnvEnable, "yes")
	setEnabled(t, true)

	var buf bytes.Buffer

	if err := (Env{}).Run(WithOutput(context.Background(), &buf)); err != nil {
		t.Fatal(err)
	}

	if want := pkg.EnvEnable + "=yes\nenabled=true\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestVersionRun(t *testing.T) {
	var buf bytes.Buffer

	if err := (Version{}).Run(WithOutput(context.Background(), &buf)); err != nil {
		t.Fatal(err)
	}

	if want := pkg.Name + " " + pkg.Version() + "\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
