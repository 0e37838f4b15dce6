package markup

import (
	"bytes"
	"strings"
	"unicode"

	"arialint/internal/source"
)

// FindClose returns the span of the first "</name>" at or after from.
// Matching is case-insensitive and does not track nesting.
func FindClose(src []byte, from uint32, name string) (source.Span, bool) {
	start, ok := nextCloseOf(src, from, name)
	if !ok {
		return source.Span{}, false
	}
	return source.Span{Start: start, End: start + uint32(len(name)) + 3}, true // #nosec G115
}

// FindMatchingClose is like FindClose but skips the closing tags of nested
// opening tags with the same name.
func FindMatchingClose(src []byte, from uint32, name string) (source.Span, bool) {
	depth := 0
	s := NewScanner(src, 0)
	s.Seek(from)
	for {
		closeAt, ok := nextCloseOf(src, s.Offset(), name)
		if !ok {
			return source.Span{}, false
		}
		// вложенные открывающие теги с тем же именем до закрывающего
		for {
			tag, found := s.Next()
			if !found || tag.Span.Start >= closeAt {
				break
			}
			if tag.Name == name && !tag.SelfClosing {
				depth++
			}
		}
		end := closeAt + uint32(len(name)) + 3 // #nosec G115
		if depth == 0 {
			return source.Span{Start: closeAt, End: end}, true
		}
		depth--
		s.Seek(end)
	}
}

// nextCloseOf finds the offset of the next "</name>" at or after from.
func nextCloseOf(src []byte, from uint32, name string) (uint32, bool) {
	n := uint32(len(src)) // #nosec G115 -- snippets are bounded by the file set
	want := uint32(len(name)) + 3 // #nosec G115
	for off := from; off+want <= n; {
		i := bytes.Index(src[off:], []byte("</"))
		if i < 0 {
			return 0, false
		}
		at := off + uint32(i) // #nosec G115
		if at+want > n {
			return 0, false
		}
		if bytes.EqualFold(src[at+2:at+2+uint32(len(name))], []byte(name)) && src[at+want-1] == '>' { // #nosec G115
			return at, true
		}
		off = at + 2
	}
	return 0, false
}

// InnerText returns the text between open and its first closing tag with all
// inner tags and whitespace removed. ok is false when no closing tag exists.
func InnerText(src []byte, open Tag) (string, bool) {
	closeSpan, ok := FindClose(src, open.Span.End, open.Name)
	if !ok {
		return "", false
	}
	return visibleText(src[open.Span.End:closeSpan.Start]), true
}

func visibleText(inner []byte) string {
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '<' {
			// "<[^>]+>": нужен хотя бы один символ до '>'
			if j := bytes.IndexByte(inner[i+1:], '>'); j > 0 {
				i += j + 1
				continue
			}
		}
		b.WriteByte(inner[i])
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, b.String())
}
