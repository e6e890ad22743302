// Package render is the rich-content rendering pipeline applied to article
// bodies before they are returned: shortcode expansion, then markdown
// conversion or paragraph auto-wrapping depending on the stored format.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ShortcodeFunc expands one shortcode occurrence. attrs holds the key="value"
// pairs from the opening tag, inner the enclosed text (empty for
// self-contained shortcodes).
type ShortcodeFunc func(attrs map[string]string, inner string) string

type Pipeline struct {
	md         goldmark.Markdown
	shortcodes map[string]ShortcodeFunc
}

func NewPipeline() *Pipeline {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Pipeline{
		md:         md,
		shortcodes: make(map[string]ShortcodeFunc),
	}
}

func (p *Pipeline) RegisterShortcode(name string, fn ShortcodeFunc) {
	p.shortcodes[name] = fn
}

// Render expands registered shortcodes and converts the body to HTML.
// Markdown bodies go through goldmark; everything else is treated as HTML
// and gets bare text blocks wrapped in paragraph tags.
func (p *Pipeline) Render(body, format string) (string, error) {
	expanded := p.expandShortcodes(body)

	if format == "markdown" {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(expanded), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return autoParagraph(expanded), nil
}

var openTagRe = regexp.MustCompile(`^\[([a-zA-Z0-9_-]+)((?:\s+[a-zA-Z0-9_-]+="[^"\]]*")*)\s*\]`)
var attrRe = regexp.MustCompile(`([a-zA-Z0-9_-]+)="([^"]*)"`)

func (p *Pipeline) expandShortcodes(s string) string {
	if len(p.shortcodes) == 0 || !strings.Contains(s, "[") {
		return s
	}

	var b strings.Builder
	i := 0
	for i < len(s) {
		idx := strings.IndexByte(s[i:], '[')
		if idx < 0 {
			b.WriteString(s[i:])
			break
		}
		start := i + idx
		b.WriteString(s[i:start])

		m := openTagRe.FindStringSubmatch(s[start:])
		if m == nil {
			b.WriteByte('[')
			i = start + 1
			continue
		}
		name := m[1]
		fn, known := p.shortcodes[name]
		if !known {
			// unknown shortcodes pass through untouched
			b.WriteString(m[0])
			i = start + len(m[0])
			continue
		}

		attrs := make(map[string]string)
		for _, am := range attrRe.FindAllStringSubmatch(m[2], -1) {
			attrs[am[1]] = am[2]
		}

		inner := ""
		consumed := len(m[0])
		closeTag := "[/" + name + "]"
		if ci := strings.Index(s[start+consumed:], closeTag); ci >= 0 {
			inner = s[start+consumed : start+consumed+ci]
			consumed += ci + len(closeTag)
		}

		b.WriteString(fn(attrs, inner))
		i = start + consumed
	}
	return b.String()
}

var blockGapRe = regexp.MustCompile(`\n{2,}`)

// autoParagraph wraps bare text blocks in <p> tags, leaving blocks that
// already start with markup alone.
func autoParagraph(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	blocks := blockGapRe.Split(trimmed, -1)
	out := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		blk = strings.TrimSpace(blk)
		if blk == "" {
			continue
		}
		if strings.HasPrefix(blk, "<") {
			out = append(out, blk)
		} else {
			out = append(out, "<p>"+blk+"</p>")
		}
	}
	return strings.Join(out, "\n")
}
