// Package testutil holds helpers shared by the package test suites.
package testutil

import "regexp"

// CSI sequences: ESC [ parameters final-letter.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes terminal escape sequences so tests can assert on
// plain output regardless of the active color theme.
func StripAnsiCodes(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
