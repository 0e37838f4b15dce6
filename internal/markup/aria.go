package markup

import (
	"regexp"
	"strings"

	"arialint/internal/source"
)

var ariaPairRe = regexp.MustCompile(`(?i)\b(aria-[a-z0-9_-]+)\s*=\s*["']([^"']*)["']`)

// ExtractARIA returns every quoted aria-* pair in src, ignoring tag
// boundaries. Names are lowercased; values are verbatim.
func ExtractARIA(src []byte) []Attr {
	return ExtractARIAFile(src, 0)
}

// ExtractARIAFile is ExtractARIA with spans attributed to file.
func ExtractARIAFile(src []byte, file source.FileID) []Attr {
	matches := ariaPairRe.FindAllSubmatchIndex(src, -1)
	out := make([]Attr, 0, len(matches))
	for _, m := range matches {
		out = append(out, Attr{
			Name:     strings.ToLower(string(src[m[2]:m[3]])),
			Value:    string(src[m[4]:m[5]]),
			Quote:    src[m[4]-1],
			HasValue: true,
			Span:     source.Span{File: file, Start: uint32(m[0]), End: uint32(m[1])}, // #nosec G115
		})
	}
	return out
}
