package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"Debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeModule) {
		t.Error("phase level must drop module events")
	}
	if !LevelDetail.ShouldEmit(ScopeModule) || LevelDetail.ShouldEmit(ScopeNode) {
		t.Error("detail level filters wrong scopes")
	}
	if !LevelDebug.ShouldEmit(ScopeNode) {
		t.Error("debug level must keep node events")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Error("error level emits nothing directly")
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)

	span := Begin(tr, ScopePass, "compress.pass", 0)
	Point(tr, ScopeNode, "inline", "f.a", span.ID(), map[string]string{"value": "1", "fn": "f"})
	span.WithExtra("inlined", "1").End("done")

	out := buf.String()
	for _, want := range []string{"→ compress.pass", "• inline (f.a) {fn=f, value=1}", "← compress.pass (done) {inlined=1}"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestLevelFiltersSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	s := Begin(tr, ScopeModule, "file:a.js", 0)
	if s.ID() != 0 {
		t.Error("filtered span must be inert")
	}
	s.WithExtra("k", "v").End("")
	Point(tr, ScopeNode, "inline", "", 0, nil)
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeNode, "inline", "g.b", 7, nil)

	var got map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("bad ndjson %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["name"] != "inline" || got["parent_id"] != float64(7) {
		t.Errorf("unexpected event %v", got)
	}
}

func TestStreamChromeIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatChrome)
	Begin(tr, ScopeDriver, "minify", 0).End("")
	Point(tr, ScopeNode, "inline", "", 0, nil)
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		TraceEvents []map[string]any `json:"traceEvents"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("bad chrome trace %q: %v", buf.String(), err)
	}
	if len(doc.TraceEvents) != 3 {
		t.Fatalf("events = %d, want 3", len(doc.TraceEvents))
	}
	if doc.TraceEvents[0]["ph"] != "B" || doc.TraceEvents[1]["ph"] != "E" || doc.TraceEvents[2]["ph"] != "i" {
		t.Errorf("phases = %v", doc.TraceEvents)
	}
}

func TestRingWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeNode, name, "", 0, nil)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, want 3", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestNewModes(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopeNode, "x", "", 0, nil)
	if RingOf(tr) == nil || len(RingOf(tr).Snapshot()) != 1 {
		t.Error("both mode must keep a ring")
	}
	if buf.Len() == 0 {
		t.Error("both mode must stream")
	}

	off, err := New(Config{Level: LevelOff})
	if err != nil || off.Enabled() {
		t.Errorf("off level: %v %v", off, err)
	}
	if _, err := New(Config{Level: LevelPhase, Mode: 42}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"":                  FormatText,
		"-":                 FormatText,
		"out.ndjson":        FormatNDJSON,
		"out.json":          FormatChrome,
		"trace.chrome.json": FormatChrome,
		"trace.log":         FormatText,
	}
	for path, want := range tests {
		if got := formatForPath(path); got != want {
			t.Errorf("formatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestContextPropagation(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != Nop {
		t.Error("empty context must yield Nop")
	}
	r := NewRingTracer(8, LevelDebug)
	ctx = WithTracer(ctx, r)
	span := Begin(FromContext(ctx), ScopeDriver, "minify", 0)
	ctx = WithSpan(ctx, span)
	if got := CurrentSpan(ctx).SpanID; got != span.ID() || got == 0 {
		t.Errorf("CurrentSpan = %d, want %d", got, span.ID())
	}
	if WithSpan(ctx, &Span{}) != ctx {
		t.Error("inert span must not replace the context")
	}
}

func TestHeartbeatStop(t *testing.T) {
	if StartHeartbeat(Nop, 1) != nil {
		t.Error("no heartbeat for disabled tracer")
	}
	h := StartHeartbeat(NewRingTracer(4, LevelPhase), 1000000)
	h.Stop()
	h.Stop()
}
