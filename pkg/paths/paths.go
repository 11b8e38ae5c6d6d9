// Package paths provides the path string helpers shared by module
// detection and scanning. Every comparison in modscan happens on
// forward-slash paths, so normalization lives here in one place.
package paths

import "strings"

// ToSlash converts backslash separators to forward slashes. Unlike
// filepath.ToSlash this applies on every platform: CI workspaces routinely
// contain Windows-style paths that must resolve identically on a Linux
// controller.
func ToSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// BeforeLast returns the substring before the last occurrence of sep.
// When sep does not occur, path is returned unchanged.
func BeforeLast(path, sep string) string {
	if i := strings.LastIndex(path, sep); i >= 0 {
		return path[:i]
	}
	return path
}

// AfterLast returns the substring after the last occurrence of sep, or
// the empty string when sep does not occur.
func AfterLast(path, sep string) string {
	if i := strings.LastIndex(path, sep); i >= 0 {
		return path[i+len(sep):]
	}
	return ""
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
