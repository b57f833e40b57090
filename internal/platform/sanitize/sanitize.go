// Package sanitize normalizes user-supplied session names into safe
// filenames.
package sanitize

import "strings"

// Filename keeps letters, digits, '.', '_', '-' and spaces; everything
// else is dropped. The result is trimmed; an empty result is returned
// as "" so callers can substitute a generated fallback name.
func Filename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
