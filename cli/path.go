package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/debugme/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// configExt is the extension of the YAML configuration file.
const configExt = ".yaml"

var defaultDirMode os.FileMode = 0o700

// configPath returns the path formed by joining the configuration directory
// with the given path elements.
//
// If no elements are given, it is equivalent to calling [pkg.ConfigDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// cachePath returns the path formed by joining the cache directory with the
// given path elements.
func cachePath(elem ...string) string {
	return filepath.Join(append([]string{pkg.CacheDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return pkg.ErrCreateDir.With(slog.String("dir", dir)).Wrap(err)
		}
	}

	return nil
}
