package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/debugme/pkg"
)

type resolverCLI struct {
	LogLevel string   `default:"info"`
	Pretty   bool     `default:"true" negatable:""`
	Count    int      `default:"1"`
	Ratio    float64  `default:"0.5"`
	Names    []string
	Sizes    []int

	Report struct {
		Tag    string `default:"DEBUG"`
		Levels int    `default:"0"`
	} `cmd:"" default:"withargs"`
}

// parseWith parses args against resolverCLI with flag defaults loaded from
// the YAML document conf.
func parseWith(t *testing.T, conf string, args ...string) resolverCLI {
	t.Helper()

	res, err := loadYAML(strings.NewReader(conf))
	if err != nil {
		t.Fatalf("loadYAML() error: %v", err)
	}

	var cli resolverCLI

	parser, err := kong.New(&cli, kong.Resolvers(res))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse(%q) error: %v", args, err)
	}

	return cli
}

func TestLoadYAML_TopLevel(t *testing.T) {
	cli := parseWith(t, "log-level: debug\npretty: false\ncount: 7\nratio: 0.25\n")

	if cli.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cli.LogLevel)
	}

	if cli.Pretty {
		t.Error("Pretty = true, want false")
	}

	if cli.Count != 7 {
		t.Errorf("Count = %d, want 7", cli.Count)
	}

	if cli.Ratio != 0.25 {
		t.Errorf("Ratio = %v, want 0.25", cli.Ratio)
	}
}

func TestLoadYAML_Underscores(t *testing.T) {
	if cli := parseWith(t, "log_level: warn\n"); cli.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cli.LogLevel)
	}
}

func TestLoadYAML_Lists(t *testing.T) {
	cli := parseWith(t, "names: [a, b]\nsizes: [1, 2, 3]\n")

	if strings.Join(cli.Names, ",") != "a,b" {
		t.Errorf("Names = %q, want [a b]", cli.Names)
	}

	if len(cli.Sizes) != 3 || cli.Sizes[2] != 3 {
		t.Errorf("Sizes = %v, want [1 2 3]", cli.Sizes)
	}
}

func TestLoadYAML_Command(t *testing.T) {
	conf := "tag: TOP\nreport:\n  tag: NESTED\n  levels: 2\n"

	cli := parseWith(t, conf, "report")

	if cli.Report.Tag != "NESTED" {
		t.Errorf("Report.Tag = %q, want NESTED", cli.Report.Tag)
	}

	if cli.Report.Levels != 2 {
		t.Errorf("Report.Levels = %d, want 2", cli.Report.Levels)
	}
}

func TestLoadYAML_CommandFallsBackToTopLevel(t *testing.T) {
	if cli := parseWith(t, "tag: TOP\n", "report"); cli.Report.Tag != "TOP" {
		t.Errorf("Report.Tag = %q, want TOP", cli.Report.Tag)
	}
}

func TestLoadYAML_FlagsOverride(t *testing.T) {
	cli := parseWith(t, "count: 7\n", "--count=9")

	if cli.Count != 9 {
		t.Errorf("Count = %d, want 9", cli.Count)
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	cli := parseWith(t, "")

	if cli.LogLevel != "info" || cli.Count != 1 || !cli.Pretty {
		t.Errorf("defaults not kept: %+v", cli)
	}
}

func TestLoadYAML_Invalid(t *testing.T) {
	_, err := loadYAML(strings.NewReader("- not\n- a mapping\n"))
	if !errors.Is(err, pkg.ErrReadConfig) {
		t.Errorf("loadYAML() error = %v, want %v", err, pkg.ErrReadConfig)
	}
}

func TestLoadTOML(t *testing.T) {
	conf := "log-level = \"debug\"\ncount = 7\nsizes = [1, 2]\n\n[report]\ntag = \"NESTED\"\n"

	res, err := loadTOML(strings.NewReader(conf))
	if err != nil {
		t.Fatalf("loadTOML() error: %v", err)
	}

	var cli resolverCLI

	parser, err := kong.New(&cli, kong.Resolvers(res))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"report"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cli.LogLevel != "debug" || cli.Count != 7 || len(cli.Sizes) != 2 {
		t.Errorf("top level not resolved: %+v", cli)
	}

	if cli.Report.Tag != "NESTED" {
		t.Errorf("Report.Tag = %q, want NESTED", cli.Report.Tag)
	}
}

func TestLoadTOML_Invalid(t *testing.T) {
	if _, err := loadTOML(strings.NewReader("= broken")); !errors.Is(err, pkg.ErrReadConfig) {
		t.Errorf("loadTOML() error = %v, want %v", err, pkg.ErrReadConfig)
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{uint64(3), "3"},
		{int64(-3), "-3"},
		{1.5, "1.5"},
		{"s", "s"},
		{true, true},
		{nil, nil},
	}

	for _, tt := range tests {
		if got := flagValue(tt.in); got != tt.want {
			t.Errorf("flagValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	got, ok := flagValue([]any{uint64(1), "a"}).([]any)
	if !ok || len(got) != 2 || got[0] != "1" || got[1] != "a" {
		t.Errorf("flagValue(list) = %#v", got)
	}
}
