package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde resolves a leading "~" or "~/" to the current user's home.
// "~name" forms are returned unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Expand substitutes ${VAR} and $VAR references, then resolves a leading ~.
// USER, HOME and TMPDIR always resolve, even when unset in the environment;
// other unset variables expand to "".
func Expand(s string) string {
	if s == "" {
		return s
	}
	return ExpandTilde(os.Expand(s, lookupVar))
}

func lookupVar(name string) string {
	switch name {
	case "USER":
		return getUser()
	case "HOME":
		return getHome()
	case "TMPDIR":
		return strings.TrimSuffix(os.TempDir(), string(os.PathSeparator))
	default:
		return os.Getenv(name)
	}
}

// getUser returns USER, then LOGNAME, then "user".
func getUser() string {
	for _, key := range []string{"USER", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "user"
}

// getHome returns the home directory, falling back to $HOME, then "~".
func getHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return "~"
}
