package profile

import (
	"slices"
	"testing"
)

func TestMake(t *testing.T) {
	p := Make(WithMode("cpu"), WithPath("/tmp/p"), WithQuiet(true), nil)

	want := Profiler{Mode: "cpu", Path: "/tmp/p", Quiet: true}
	if p != want {
		t.Errorf("Make() = %+v, want %+v", p, want)
	}
}

func TestStart_NoMode(t *testing.T) {
	stop := Make(WithPath(t.TempDir())).Start()

	if _, ok := stop.(ignore); !ok {
		t.Errorf("Start() without mode = %T, want no-op", stop)
	}

	stop.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	stop := Make(WithMode("bogus"), WithPath(t.TempDir())).Start()

	if _, ok := stop.(ignore); !ok {
		t.Errorf("Start() with unknown mode = %T, want no-op", stop)
	}

	stop.Stop()
}

func TestModes_Sorted(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() = %q, not sorted", modes)
	}

	if slices.Contains(modes, "quiet") {
		t.Error("Modes() includes quiet")
	}
}
