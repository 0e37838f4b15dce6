package diagfmt

import (
	"strings"

	"golang.org/x/net/html"
)

// splitCode splits a message into alternating text and code segments. Even
// indexes are plain text, odd ones were wrapped in backticks. An unmatched
// trailing backtick is kept as text.
func splitCode(msg string) []string {
	parts := strings.Split(msg, "`")
	if len(parts)%2 == 0 {
		last := len(parts) - 1
		parts[last-1] = parts[last-1] + "`" + parts[last]
		parts = parts[:last]
	}
	return parts
}

// quotes are legal in text content, keep them literal like the legacy output
var unescapeQuotes = strings.NewReplacer("&#34;", `"`, "&#39;", "'")

func escapeText(s string) string {
	return unescapeQuotes.Replace(html.EscapeString(s))
}

// HTMLMessage turns a diagnostic or change message into an HTML fragment:
// markup is escaped and backtick fragments become <code> elements.
func HTMLMessage(msg string) string {
	var b strings.Builder
	for i, part := range splitCode(msg) {
		if i%2 == 1 {
			b.WriteString("<code>")
			b.WriteString(escapeText(part))
			b.WriteString("</code>")
			continue
		}
		b.WriteString(escapeText(part))
	}
	return b.String()
}

// PlainMessage drops the backticks.
func PlainMessage(msg string) string {
	return strings.Join(splitCode(msg), "")
}
