package debugme

import (
	"testing"

	"github.com/ardnew/debugme/pkg"
)

// setEnabled sets the enable flag for the duration of the test.
func setEnabled(t *testing.T, enable bool) {
	t.Helper()

	previous := SetEnabled(enable)
	t.Cleanup(func() { SetEnabled(previous) })
}

func TestParseEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"no", false},
		{"No", false},
		{"off", false},
		{" off ", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"on", true},
		{"ON", true},
		{"anything", true},
		{"2", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ParseEnabled(tt.value); got != tt.want {
				t.Errorf("ParseEnabled(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLookupEnabled(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"unset", map[string]string{}, true},
		{"empty", map[string]string{pkg.EnvEnable: ""}, false},
		{"disabled", map[string]string{pkg.EnvEnable: "0"}, false},
		{"enabled", map[string]string{pkg.EnvEnable: "yes"}, true},
		{"other variable", map[string]string{"DEBUG": "0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]

				return v, ok
			}

			if got := LookupEnabled(lookup); got != tt.want {
				t.Errorf("LookupEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetEnabled(t *testing.T) {
	setEnabled(t, true)

	if prev := SetEnabled(false); !prev {
		t.Error("SetEnabled(false) returned previous false, want true")
	}

	if Enabled() {
		t.Error("Enabled() = true after SetEnabled(false)")
	}

	if prev := SetEnabled(true); prev {
		t.Error("SetEnabled(true) returned previous true, want false")
	}

	if !Enabled() {
		t.Error("Enabled() = false after SetEnabled(true)")
	}
}
