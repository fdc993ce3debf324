package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the base name of the running executable. It names the
// configuration and cache directories.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}

		return prefixOf(exe)
	},
)

// debuggerBinary matches the default output name of dlv.
//
//nolint:gochecknoglobals
var debuggerBinary = regexp.MustCompile(`^__debug_bin\d*$`)

// prefixOf derives a prefix from the executable path exe. Test binaries
// (pkg.test), debugger builds, and names that reduce to nothing map to
// [Name]. Leading dots and any other extension are removed.
func prefixOf(exe string) string {
	base := strings.TrimLeft(filepath.Base(exe), ".")
	ext := filepath.Ext(base)

	if ext == ".test" {
		return Name
	}

	id := strings.TrimSuffix(base, ext)
	if id == "" || debuggerBinary.MatchString(id) {
		return Name
	}

	return id
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".config")
			} else {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, Prefix())
	},
)

// CacheDir returns the cache directory path used for transient files.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".cache")
			} else {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, Prefix())
	},
)
