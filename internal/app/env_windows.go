//go:build windows

package app

import "strings"

// Windows environment keys are case-insensitive.
func envKeyEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
