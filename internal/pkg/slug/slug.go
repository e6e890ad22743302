// Package slug sanitizes lookup keys the same way the content store
// normalizes slugs, so a key arriving from a URL matches the stored form.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Sanitize lowercases s, transliterates accented letters to their base form
// and reduces every other non-alphanumeric run to a single hyphen. The
// result may be empty, which callers treat as an invalid key.
func Sanitize(s string) string {
	flat, _, err := transform.String(deaccent, s)
	if err != nil {
		flat = s
	}
	flat = strings.ToLower(flat)

	var b strings.Builder
	b.Grow(len(flat))
	pendingHyphen := false
	for _, r := range flat {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
