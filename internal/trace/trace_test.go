package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopeFile, true},
		{LevelPhase, ScopePass, false},
		{LevelDetail, ScopePass, true},
		{LevelDetail, ScopeRule, false},
		{LevelDebug, ScopeRule, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("DETAIL"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel = %v, %v", l, err)
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	root := Begin(tr, ScopeDriver, "diag", 0)
	pass := Begin(tr, ScopePass, "pass:interaction", root.ID())
	Begin(tr, ScopeRule, "rule:INT2001", pass.ID()).End("")
	pass.WithExtra("reported", "1").End("")
	root.End("done")

	out := buf.String()
	for _, want := range []string{"→ diag", "    → pass:interaction", "← pass:interaction {reported=1}", "← diag (done)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rule:") {
		t.Errorf("rule scope must be filtered at detail level:\n%s", out)
	}
}

func TestStreamTracerNDJSONAndErrors(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatNDJSON)

	Begin(tr, ScopeDriver, "diag", 0).End("")
	Error(tr, "read", errors.New("boom"), 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the error event, got %d lines:\n%s", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "error" || ev["detail"] != "boom" {
		t.Errorf("event = %v", ev)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop without tracer")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != tr {
		t.Fatal("tracer not propagated")
	}
	ctx = WithSpanContext(ctx, SpanContext{SpanID: 7})
	if CurrentSpan(ctx).SpanID != 7 {
		t.Fatal("span context not propagated")
	}
	if FromContext(ctx) != tr {
		t.Fatal("span context dropped the tracer")
	}

	inner := WithSpanContext(ctx, SpanContext{SpanID: 9})
	if CurrentSpan(inner).SpanID != 9 || CurrentSpan(ctx).SpanID != 7 {
		t.Fatal("child span context leaked into the parent")
	}
	if CurrentSpan(context.Background()).SpanID != 0 {
		t.Fatal("expected zero span without a span context")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if s := Begin(tr, ScopeDriver, "x", 0); s.ID() != 0 {
		t.Fatalf("span on nop tracer has id %d", s.ID())
	}
}
