package debugme

import (
	"fmt"
	"io"

	"github.com/sanity-io/litter"
)

// Undefined is the value of a name that could not be resolved.
// It is rendered as "<undefined>".
var Undefined any = undefined{}

type undefined struct{}

const undefinedText = "<undefined>"

func (undefined) String() string { return undefinedText }

// LitterDump renders Undefined nested inside containers, where litter
// writes it as undefined<undefined>.
func (undefined) LitterDump(w io.Writer) { _, _ = io.WriteString(w, undefinedText) }

// IsUndefined reports whether v is [Undefined].
func IsUndefined(v any) bool {
	_, ok := v.(undefined)

	return ok
}

// dumper renders values as compact Go literals. Map keys are sorted and
// pointer cycles are replaced by back references, so the output is stable
// and bounded for self-referential values.
var dumper = litter.Options{
	Compact:           true,
	StripPackageNames: true,
}

// Pretty renders v for a binding line: strings keep their quotes,
// containers are rendered recursively, and [Undefined] is "<undefined>".
// Pretty never panics.
func Pretty(v any) (s string) {
	switch {
	case v == nil:
		return "nil"
	case IsUndefined(v):
		return undefinedText
	}

	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("%#v", v)
		}
	}()

	return dumper.Sdump(v)
}
