// Package slug canonicalizes URL path segments into their storage form.
package slug

import "strings"

// Normalize converts a raw slug candidate into its canonical, URL-safe form:
// trimmed, lowercased, every character outside [a-z0-9-] replaced with a
// hyphen, hyphen runs collapsed, edge hyphens stripped. The function is
// idempotent, and the empty string is a legal result: it is the tenant's
// homepage slug. Callers must normalize before any uniqueness check and
// before storage.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// homepageAliases are the slugs treated as interchangeable entry points for
// a tenant's site root.
var homepageAliases = []string{"home", "index", ""}

// IsHomepageAlias reports whether a normalized slug addresses the homepage.
func IsHomepageAlias(s string) bool {
	for _, alias := range homepageAliases {
		if s == alias {
			return true
		}
	}
	return false
}

// HomepageAliases returns the alias set in resolution priority order
// (home > index > empty).
func HomepageAliases() []string {
	return homepageAliases
}
