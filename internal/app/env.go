package app

import (
	"os"
	"slices"
)

// EnvRule names the variable that marks a POSIX compatibility shell (MSYS2,
// Git Bash) and the variables it leaves behind with paths native programs
// cannot use.
type EnvRule struct {
	Marker     string
	Dependents []string
}

// DefaultEnvRule is the MSYS cleanup: MSYSTEM marks the layer, HOME and SHELL
// hold its paths.
func DefaultEnvRule() EnvRule {
	return EnvRule{
		Marker:     "MSYSTEM",
		Dependents: []string{"HOME", "SHELL"},
	}
}

// EnvStore is the process environment as seen by the launcher.
type EnvStore interface {
	Environ() []string
	Unsetenv(key string) error
}

// OSEnv implements EnvStore on the real process environment.
type OSEnv struct{}

func (OSEnv) Environ() []string {
	return os.Environ()
}

func (OSEnv) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

// CleanEnvironment applies rule to a KEY=VALUE snapshot. When the marker is
// absent the snapshot is returned as is and removed is nil. Otherwise every
// entry for the marker or a dependent is dropped and its key reported in
// removed, in snapshot order.
func CleanEnvironment(env []string, rule EnvRule) (cleaned []string, removed []string) {
	if rule.Marker == "" || !hasKey(env, rule.Marker) {
		return env, nil
	}

	drop := append([]string{rule.Marker}, rule.Dependents...)
	cleaned = make([]string, 0, len(env))
	for _, e := range env {
		key, _ := splitEnv(e)
		if slices.ContainsFunc(drop, func(d string) bool { return envKeyEqual(key, d) }) {
			removed = append(removed, key)
			continue
		}
		cleaned = append(cleaned, e)
	}
	return cleaned, removed
}

func hasKey(env []string, key string) bool {
	for _, e := range env {
		if k, _ := splitEnv(e); envKeyEqual(k, key) {
			return true
		}
	}
	return false
}

// splitEnv splits KEY=VALUE. The search for '=' starts after the first byte
// so Windows per-drive entries like "=C:=C:\" keep their leading '=' in the key.
func splitEnv(e string) (key, value string) {
	if e == "" {
		return "", ""
	}
	for i := 1; i < len(e); i++ {
		if e[i] == '=' {
			return e[:i], e[i+1:]
		}
	}
	return e, ""
}
