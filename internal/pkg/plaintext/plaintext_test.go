package plaintext

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"trim", "  hello  ", "hello"},
		{"collapse runs", "a \t\n  b", "a b"},
		{"nbsp", "a  b", "a b"},
		{"entities", "Tom &amp; Jerry &quot;live&quot;", `Tom & Jerry "live"`},
		{"html5 entities", "l&rsquo;estate &hellip;", "l’estate …"},
		{"inline tags", "He<b>ll</b>o", "Hello"},
		{"block boundary", "<p>A</p><p>B</p>", "A B"},
		{"paragraphs with gap", "<p>Hello</p>\n\n<p>World</p>", "Hello World"},
		{"line breaks", "one<br>two<br/>three", "one two three"},
		{"script dropped", "before<script>var x = 1;</script>after", "beforeafter"},
		{"style dropped", "a<style>p { color: red }</style>b", "ab"},
		{"encoded markup stripped", "&lt;b&gt;bold&lt;/b&gt;", "bold"},
		{"mixed", "  <h2>Il &egrave; <i>titolo</i></h2> ", "Il è titolo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  <p>Hello</p>\n\n<p>World</p>  ",
		"Tom &amp; Jerry",
		"He<b>ll</b>o   world",
		"<div><script>x()</script>testo <em>ricco</em></div>",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestFromAny(t *testing.T) {
	if got := FromAny("  ciao  "); got != "ciao" {
		t.Fatalf("FromAny string = %q", got)
	}
	if got := FromAny(42); got != "" {
		t.Fatalf("FromAny int = %q, want empty", got)
	}
	if got := FromAny(nil); got != "" {
		t.Fatalf("FromAny nil = %q, want empty", got)
	}
	if got := FromAny([]string{"a"}); got != "" {
		t.Fatalf("FromAny slice = %q, want empty", got)
	}
}
