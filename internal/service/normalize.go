package service

import "strings"

// Normalize lowercases and trims whitespace from a raw drink name. It is the
// key used for every case-insensitive comparison in this package.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
