// Package markup is a tolerant tokenizer for markup snippets. It produces a
// flat sequence of opening-tag records and never builds a tree; nesting is
// not tracked except by FindMatchingClose.
//
// A tag is '<' followed by [A-Za-z0-9:-]+ and ends at the first '>'. Quotes do
// not protect '>', closing tags, comments and doctypes are skipped.
package markup

import (
	"bytes"
	"iter"
	"strings"

	"arialint/internal/source"
)

// Scanner walks a snippet and yields tags left to right.
type Scanner struct {
	cur Cursor
}

// NewScanner creates a scanner over src; spans carry the given file id.
func NewScanner(src []byte, file source.FileID) *Scanner {
	return &Scanner{cur: NewCursor(src, file)}
}

// Offset returns the position the next search starts from.
func (s *Scanner) Offset() uint32 { return s.cur.Off }

// Seek moves the scanner to off.
func (s *Scanner) Seek(off uint32) {
	s.cur.Off = min(off, s.cur.Limit)
}

// Next returns the next tag, or false at the end of input.
func (s *Scanner) Next() (Tag, bool) {
	c := &s.cur
	for !c.EOF() {
		i := bytes.IndexByte(c.Src[c.Off:c.Limit], '<')
		if i < 0 {
			c.Off = c.Limit
			break
		}
		c.Off += uint32(i) // #nosec G115 -- bounded by Limit
		if tag, ok := parseTag(c); ok {
			return tag, true
		}
		c.Off++
	}
	return Tag{}, false
}

// Scan lazily yields every tag in src.
func Scan(src []byte) iter.Seq[Tag] {
	return ScanFile(src, 0)
}

// ScanFile is Scan with spans attributed to file.
func ScanFile(src []byte, file source.FileID) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		s := NewScanner(src, file)
		for {
			tag, ok := s.Next()
			if !ok || !yield(tag) {
				return
			}
		}
	}
}

// Tags collects every tag in src.
func Tags(src []byte, file source.FileID) []Tag {
	var out []Tag
	for t := range ScanFile(src, file) {
		out = append(out, t)
	}
	return out
}

// TagAt parses a tag that starts exactly at off.
func TagAt(src []byte, file source.FileID, off uint32) (Tag, bool) {
	c := NewCursor(src, file)
	if off >= c.Limit || src[off] != '<' {
		return Tag{}, false
	}
	c.Off = off
	return parseTag(&c)
}

// parseTag expects the cursor on '<'. On success the cursor is left after '>';
// on failure it is restored.
func parseTag(c *Cursor) (Tag, bool) {
	start := c.Mark()
	c.Bump()

	nameMark := c.Mark()
	for isNameByte(c.Peek()) {
		c.Bump()
	}
	raw := c.Slice(nameMark)
	if len(raw) == 0 {
		c.Reset(start)
		return Tag{}, false
	}
	// имя должно заканчиваться на границе слова
	if c.Peek() == '_' && isAlnum(raw[len(raw)-1]) {
		c.Reset(start)
		return Tag{}, false
	}
	nameSpan := c.SpanFrom(nameMark)

	gt := bytes.IndexByte(c.Src[c.Off:c.Limit], '>')
	if gt < 0 {
		c.Reset(start)
		return Tag{}, false
	}
	attrStart := c.Off
	attrEnd := c.Off + uint32(gt) // #nosec G115 -- bounded by Limit

	tag := Tag{
		Name:     strings.ToLower(string(raw)),
		RawName:  string(raw),
		AttrText: string(c.Src[attrStart:attrEnd]),
		NameSpan: nameSpan,
	}
	tag.Attrs = parseAttrs(c.Src, c.File, attrStart, attrEnd)
	tag.SelfClosing = strings.HasSuffix(strings.TrimRight(tag.AttrText, " \t\n\r\f\v"), "/")

	c.Off = attrEnd + 1
	tag.Span = c.SpanFrom(start)
	return tag, true
}

func parseAttrs(src []byte, file source.FileID, from, to uint32) []Attr {
	c := Cursor{Src: src, File: file, Off: from, Limit: to}
	var attrs []Attr
	for {
		c.SkipSpace()
		if c.EOF() {
			return attrs
		}
		if !isAttrNameByte(c.Peek()) {
			// '/', '=' или одиночная кавычка вне значения
			c.Bump()
			continue
		}

		m := c.Mark()
		for !c.EOF() && isAttrNameByte(c.Peek()) {
			c.Bump()
		}
		attr := Attr{Name: strings.ToLower(string(c.Slice(m)))}

		afterName := c.Mark()
		c.SkipSpace()
		if c.Eat('=') {
			c.SkipSpace()
			attr.HasValue = true
			readValue(&c, &attr)
		} else {
			c.Reset(afterName)
		}
		attr.Span = c.SpanFrom(m)
		attrs = append(attrs, attr)
	}
}

func readValue(c *Cursor, attr *Attr) {
	if q := c.Peek(); q == '"' || q == '\'' {
		if i := bytes.IndexByte(c.Src[c.Off+1:c.Limit], q); i >= 0 {
			valStart := c.Off + 1
			valEnd := valStart + uint32(i) // #nosec G115 -- bounded by Limit
			attr.Value = string(c.Src[valStart:valEnd])
			attr.Quote = q
			c.Off = valEnd + 1
			return
		}
		// незакрытая кавычка: остаток тега считаем значением без кавычек
		attr.Value = string(c.Src[c.Off:c.Limit])
		c.Off = c.Limit
		return
	}
	m := c.Mark()
	for !c.EOF() && !isSpace(c.Peek()) {
		c.Bump()
	}
	attr.Value = string(c.Slice(m))
}
