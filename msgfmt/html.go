package msgfmt

import (
	"html"

	"golang.org/x/text/unicode/norm"
)

// escapeHTMLValue implements FormatHTML's "round-trip (unescape-then-escape
// so that pre-escaped values are not double-encoded)" rule (spec.md §6).
// Unescaping first means a caller-supplied value already containing
// entities (e.g. "Tom &amp; Jerry") re-escapes to the same entities rather
// than escaping the literal "&" a second time. The normalize-to-NFC step
// between the two passes mirrors the composed-form normalization
// `aretext/text/escape.go` applies before comparing or rendering text, so
// a value built from decomposed combining sequences escapes identically to
// its precomposed form.
func escapeHTMLValue(s string) string {
	unescaped := html.UnescapeString(s)
	normalized := norm.NFC.String(unescaped)
	return html.EscapeString(normalized)
}
