// Package profile provides optional runtime profiling for debugme.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof -o debugme .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	)
//	defer p.Start().Stop()
//
// The debugme command exposes the same settings as flags:
//
//	debugme --pprof-mode=heap --pprof-dir=./profiles report a=1
//
// Profiles are written to the directory with names matching the mode
// (cpu.pprof, mem.pprof, ...) and are read with go tool pprof:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// The pprof build also imports [net/http/pprof], which registers its
// handlers with [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
