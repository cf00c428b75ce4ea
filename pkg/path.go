package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// prefixRules rewrite the executable name into the directory prefix.
//
//nolint:gochecknoglobals
var prefixRules = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`^__debug_bin\d+$`), Name}, // dlv default output
	{regexp.MustCompile(`^\.+`), ""},               // leading dot(s)
}

// Prefix returns the name of the per-user configuration and cache
// directories: the base name of the executable without its extension, or
// [Name] when running under the debugger.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		for _, rule := range prefixRules {
			id = rule.pattern.ReplaceAllString(id, rule.replace)
		}

		if id == "" {
			return Name
		}

		return id
	},
)

// ConfigDir returns the directory holding the configuration file.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the directory used for transient files such as profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// userDir resolves a per-user directory, falling back to a dot directory in
// $HOME and then to the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
