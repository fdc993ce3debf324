package debugme

import (
	"runtime"
	"strconv"
)

// maxFrames bounds the stack walked for the "backtrace" pseudo-name.
const maxFrames = 64

// Frame describes one source location on the call stack.
type Frame struct {
	File     string
	Function string
	Line     int
}

// String returns the frame as "file:line:in function".
func (f Frame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":in " + f.Function
}

// Callers returns the call site skip frames above the caller of Callers,
// followed by up to levels frames of its own callers.
//
// With skip 0, site is the function that called Callers. The returned trace is
// shorter than levels when the stack is not deep enough.
func Callers(skip, levels int) (site Frame, trace []Frame) {
	levels = max(0, levels)

	// Extra room for frames expanded from inlined calls.
	pcs := make([]uintptr, levels+1+8)

	// 0=runtime.Callers, 1=Callers
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return Frame{Function: "???"}, nil
	}

	frames := runtime.CallersFrames(pcs[:n])

	for i := 0; i <= levels; i++ {
		f, more := frames.Next()

		fr := Frame{File: f.File, Function: f.Function, Line: f.Line}
		if i == 0 {
			site = fr
		} else {
			trace = append(trace, fr)
		}

		if !more {
			break
		}
	}

	return site, trace
}

// framesText returns the String form of each frame.
func framesText(trace []Frame) []string {
	out := make([]string, len(trace))

	for i, f := range trace {
		out[i] = f.String()
	}

	return out
}
