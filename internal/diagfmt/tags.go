package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"arialint/internal/markup"
	"arialint/internal/source"
)

// TagOutput is the JSON form of a scanned tag.
type TagOutput struct {
	Name        string        `json:"name"`
	Role        string        `json:"role,omitempty"`
	SelfClosing bool          `json:"self_closing,omitempty"`
	Attrs       []markup.Attr `json:"attrs"`
	Span        source.Span   `json:"span"`
}

// FormatTagsPretty выводит теги в человекочитаемом формате
func FormatTagsPretty(w io.Writer, tags []markup.Tag, fs *source.FileSet) error {
	for i, tag := range tags {
		startPos, endPos := fs.Resolve(tag.Span)
		fmt.Fprintf(w, "%3d: %-12s at %d:%d-%d:%d", i+1, tag.Name, startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tag.SelfClosing {
			fmt.Fprint(w, " (self-closing)")
		}
		if len(tag.Attrs) > 0 {
			parts := make([]string, 0, len(tag.Attrs))
			for _, a := range tag.Attrs {
				parts = append(parts, formatAttr(a))
			}
			fmt.Fprintf(w, " [%s]", strings.Join(parts, " "))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func formatAttr(a markup.Attr) string {
	switch {
	case !a.HasValue:
		return a.Name
	case a.Quoted():
		return fmt.Sprintf("%s=%c%s%c", a.Name, a.Quote, a.Value, a.Quote)
	default:
		// без кавычек: сканер такие значения не учитывает
		return fmt.Sprintf("%s=%s(unquoted)", a.Name, a.Value)
	}
}

// FormatTagsJSON выводит теги в JSON формате
func FormatTagsJSON(w io.Writer, tags []markup.Tag) error {
	output := make([]TagOutput, 0, len(tags))
	for _, tag := range tags {
		attrs := tag.Attrs
		if attrs == nil {
			attrs = []markup.Attr{}
		}
		output = append(output, TagOutput{
			Name:        tag.Name,
			Role:        tag.Role(),
			SelfClosing: tag.SelfClosing,
			Attrs:       attrs,
			Span:        tag.Span,
		})
	}
	return WriteJSON(w, output)
}
