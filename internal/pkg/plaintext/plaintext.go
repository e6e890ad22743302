// Package plaintext converts rich text into a canonical plain-text form:
// HTML entities decoded, markup stripped, whitespace collapsed.
package plaintext

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// blockTags are elements whose boundaries imply a whitespace break when the
// markup is stripped, so "<p>A</p><p>B</p>" becomes "A B" rather than "AB".
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// Normalize decodes character entities, strips markup (dropping script and
// style content entirely), collapses every run of Unicode whitespace to a
// single ASCII space and trims the ends. It is idempotent on its own output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	decoded := html.UnescapeString(s)
	return collapse(stripTags(decoded))
}

// FromAny normalizes v when it holds a string and returns "" for any other
// type. Loosely-typed stores (custom fields, metadata) go through here.
func FromAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Normalize(s)
}

func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	z := xhtml.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch tt := z.Next(); tt {
		case xhtml.ErrorToken:
			return b.String()
		case xhtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				switch tt {
				case xhtml.StartTagToken:
					skip++
				case xhtml.EndTagToken:
					if skip > 0 {
						skip--
					}
				}
				continue
			}
			if blockTags[tag] {
				b.WriteByte(' ')
			}
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
