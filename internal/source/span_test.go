package source

import "testing"

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{"normal", Span{File: 1, Start: 10, End: 20}, 5, Span{File: 1, Start: 5, End: 15}},
		{"zero", Span{File: 1, Start: 10, End: 20}, 0, Span{File: 1, Start: 10, End: 20}},
		{"to origin", Span{File: 1, Start: 10, End: 20}, 10, Span{File: 1, Start: 0, End: 10}},
		{"underflow keeps span", Span{File: 1, Start: 10, End: 20}, 15, Span{File: 1, Start: 10, End: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftLeft(tt.shift); got != tt.expected {
				t.Errorf("ShiftLeft(%d) = %v, want %v", tt.shift, got, tt.expected)
			}
		})
	}
}

func TestSpan_CoverAndContains(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 9}
	b := Span{File: 0, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 0, Start: 2, End: 9}) {
		t.Errorf("Cover = %v", got)
	}
	if other := (Span{File: 1, Start: 0, End: 100}); a.Cover(other) != a {
		t.Error("Cover across files must not merge")
	}
	if !a.Contains(Span{File: 0, Start: 5, End: 9}) {
		t.Error("expected containment")
	}
	if a.Contains(b) {
		t.Error("unexpected containment")
	}
}

func TestSpan_Text(t *testing.T) {
	content := []byte(`<nav role="navigation">`)
	if got := (Span{Start: 5, End: 22}).Text(content); got != `role="navigation"` {
		t.Errorf("Text = %q", got)
	}
	if got := (Span{Start: 20, End: 99}).Text(content); got != `n">` {
		t.Errorf("clamped Text = %q", got)
	}
	if got := (Span{Start: 9, End: 3}).Text(content); got != "" {
		t.Errorf("inverted Text = %q", got)
	}
}
