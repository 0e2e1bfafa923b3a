// Package normalize reduces free-form phone and name strings to
// canonical comparison keys for duplicate matching.
package normalize

import "strings"

// Phone strips everything but digits. No locale handling: "0812..."
// and "+62 812..." normalize to different keys and will not match.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Name lowercases and strips everything outside [a-z0-9], so names
// differing only in case, whitespace or punctuation compare equal.
func Name(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
