//go:build !windows

package app

func envKeyEqual(a, b string) bool {
	return a == b
}
