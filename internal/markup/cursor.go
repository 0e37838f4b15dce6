package markup

import (
	"fmt"

	"arialint/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в тексте сниппета
type Cursor struct {
	Src  []byte
	File source.FileID
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(Src).
	Limit uint32
}

// NewCursor creates a cursor over the whole of src.
func NewCursor(src []byte, file source.FileID) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("snippet length overflow: %w", err))
	}
	return Cursor{Src: src, File: file, Limit: limit}
}

// EOF проверяет, достигнут ли конец окна
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Peek2 returns the current and next byte when both are inside the window.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.Src[c.Off], c.Src[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// SkipSpace consumes markup whitespace.
func (c *Cursor) SkipSpace() {
	for !c.EOF() && isSpace(c.Src[c.Off]) {
		c.Off++
	}
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File, Start: uint32(m), End: c.Off}
}

// Slice returns the bytes consumed since m.
func (c *Cursor) Slice(m Mark) []byte {
	return c.Src[m:c.Off]
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func isNameByte(b byte) bool {
	return isAlnum(b) || b == ':' || b == '-'
}

func isAttrNameByte(b byte) bool {
	switch b {
	case 0, '=', '>', '/', '"', '\'':
		return false
	}
	return !isSpace(b)
}
