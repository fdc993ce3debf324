package cmd

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/ardnew/debugme/debugme"
	"github.com/ardnew/debugme/pkg"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		arg       string
		wantName  string
		wantValue any
	}{
		{"n=1", "n", uint64(1)},
		{"neg=-2", "neg", int64(-2)},
		{"f=1.5", "f", 1.5},
		{"s=hi", "s", "hi"},
		{"s=hello world", "s", "hello world"},
		{`q="1"`, "q", "1"},
		{"b=true", "b", true},
		{"e=", "e", nil},
		{"l=[1, 2]", "l", []any{uint64(1), uint64(2)}},
		{"m={k: v}", "m", map[string]any{"k": "v"}},
		{"eq=a=b", "eq", "a=b"},
		{" x =1", "x", uint64(1)},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, value, err := parseBinding(tt.arg)
			if err != nil {
				t.Fatalf("parseBinding(%q) error: %v", tt.arg, err)
			}

			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}

			if !reflect.DeepEqual(value, tt.wantValue) {
				t.Errorf("value = %#v, want %#v", value, tt.wantValue)
			}
		})
	}
}

func TestParseBinding_Invalid(t *testing.T) {
	for _, arg := range []string{"", "novalue", "=1", " =1"} {
		if _, _, err := parseBinding(arg); !errors.Is(err, pkg.ErrInvalidBinding) {
			t.Errorf("parseBinding(%q) error = %v, want %v", arg, err, pkg.ErrInvalidBinding)
		}
	}
}

func TestBind(t *testing.T) {
	tests := []struct {
		name string
		cat  debugme.Category
	}{
		{"a", debugme.CategoryLocal},
		{"_a", debugme.CategoryLocal},
		{"@a", debugme.CategoryField},
		{"@@a", debugme.CategoryShared},
		{"Limit", debugme.CategoryConst},
		{"Mod::Limit", debugme.CategoryConst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := bind(nil, tt.name, 1)

			got := sc.Category(tt.cat)
			if len(got) != 1 || got[0].Name != tt.name {
				t.Errorf("bind(%q) category %d = %v", tt.name, tt.cat, got)
			}
		})
	}
}

func TestReadBindings(t *testing.T) {
	src := Source{
		Name:       "test.yaml",
		ReadCloser: io.NopCloser(strings.NewReader("b: 2\na: 1\n---\n\"@c\": x\nLimit: 9\na: 3\n")),
	}

	sc, err := readBindings(debugme.NewScope(), src)
	if err != nil {
		t.Fatalf("readBindings error: %v", err)
	}

	if got, want := sc.Names(), []string{"b", "a", "@c", "Limit"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}

	if v, _ := sc.Lookup("a"); v != uint64(3) {
		t.Errorf("a = %#v, want 3", v)
	}
}

func TestReadBindings_Invalid(t *testing.T) {
	src := Source{
		Name:       "bad.yaml",
		ReadCloser: io.NopCloser(strings.NewReader("- not\n- a mapping\n")),
	}

	if _, err := readBindings(debugme.NewScope(), src); !errors.Is(err, ErrReadSource) {
		t.Errorf("readBindings error = %v, want %v", err, ErrReadSource)
	}
}

func TestReadBindings_Empty(t *testing.T) {
	src := Source{Name: "empty", ReadCloser: io.NopCloser(strings.NewReader(""))}

	sc, err := readBindings(nil, src)
	if err != nil || len(sc.Names()) != 0 {
		t.Errorf("readBindings(empty) = %v, %v", sc.Names(), err)
	}
}
