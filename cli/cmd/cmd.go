package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(contextKey{}).(*kong.Context)

	return ktx
}

type outputKey struct{}

// WithOutput returns a new context.Context whose commands write to w instead
// of [os.Stdout].
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// Source is a named input stream.
type Source struct {
	Name string
	io.ReadCloser
}

type sourcesKey struct{}

// stdinSource is the special source name for reading from stdin.
const stdinSource = "-"

// WithSources returns a new context.Context containing the given source
// files, opened for reading.
//
// Files are deduplicated by device and inode, so symlinks and relative paths
// to the same file are read once. Every "-" refers to stdin, which is read
// once, after all regular files. Files that cannot be opened are skipped.
func WithSources(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, openSources(paths))
}

func sourcesFrom(ctx context.Context) []Source {
	src, _ := ctx.Value(sourcesKey{}).([]Source)

	return src
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

func openSources(paths []string) []Source {
	if len(paths) == 0 {
		return nil
	}

	var (
		out   []Source
		stdin bool
	)

	seen := make(map[fileKey]struct{})

	// Stdin may also be named by a path such as /dev/stdin.
	stdinKey, hasStdinKey := fileKey{}, false
	if info, err := os.Stdin.Stat(); err == nil {
		stdinKey, hasStdinKey = makeFileKey(info)
	}

	for _, path := range paths {
		if path == stdinSource {
			stdin = true

			continue
		}

		key, file, ok := openUnique(path, seen)
		if !ok {
			continue
		}

		if hasStdinKey && key == stdinKey {
			file.Close()

			stdin = true

			continue
		}

		out = append(out, Source{Name: path, ReadCloser: file})
	}

	if stdin {
		out = append(out, Source{Name: stdinSource, ReadCloser: io.NopCloser(os.Stdin)})
	}

	return out
}

// openUnique opens the file at path unless a file with the same device and
// inode was already seen.
func openUnique(path string, seen map[fileKey]struct{}) (fileKey, *os.File, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, nil, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fileKey{}, nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return fileKey{}, nil, false
	}

	if _, dup := seen[key]; dup {
		return fileKey{}, nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return fileKey{}, nil, false
	}

	return key, file, true
}

// makeFileKey returns false if info.Sys() is not a *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (fileKey, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
