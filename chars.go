package sanipath

import "strings"

// replacement is substituted for every blacklisted character.
const replacement = '_'

// punctBlacklist holds the printable characters that are illegal in at least
// one of NTFS and POSIX filenames. Separators are included because this
// filter operates on single segments, never on whole paths.
const punctBlacklist = `<>:"|?*\/`

// isBlacklisted reports whether r may not appear in a path segment on all
// supported filesystems. Beyond the printable blacklist this covers the
// C0 controls (0x00-0x1F), DEL (0x7F), the C1 controls, and NBSP (0xA0).
func isBlacklisted(r rune) bool {
	if r < 0x20 || (r >= 0x7F && r <= 0xA0) {
		return true
	}
	return strings.ContainsRune(punctBlacklist, r)
}

// replaceBlacklisted substitutes '_' for every blacklisted character in s.
// It is total and order-independent: each rune is inspected exactly once.
func replaceBlacklisted(s string) string {
	if !strings.ContainsFunc(s, isBlacklisted) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isBlacklisted(r) {
			b.WriteRune(replacement)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
