package ui

import (
	"strings"
	"testing"

	"jsmin/internal/buildpipeline"
)

func TestProgressModelEvents(t *testing.T) {
	events := make(chan buildpipeline.Event)
	m := NewProgressModel("minify", []string{"a.js", "b.js", "c.js"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.js", Stage: buildpipeline.StageCompress, Status: buildpipeline.StatusWorking})
	if m.items[0].status != "compressing" {
		t.Errorf("a.js status = %q", m.items[0].status)
	}
	m.Update(eventMsg{File: "a.js", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusDone})
	m.Update(eventMsg{File: "b.js", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusCached})
	m.Update(eventMsg{File: "c.js", Stage: buildpipeline.StageParse, Status: buildpipeline.StatusError})
	// после финального статуса файл не меняется
	m.Update(eventMsg{File: "a.js", Stage: buildpipeline.StageParse, Status: buildpipeline.StatusWorking})
	m.Update(eventMsg{File: "unknown.js", Status: buildpipeline.StatusDone})

	if m.items[0].status != "done" || m.items[1].status != "cached" || m.items[2].status != "error" {
		t.Errorf("statuses = %+v", m.items)
	}
	if p := m.percent(); p != 1 {
		t.Errorf("percent = %v, want 1", p)
	}

	view := m.View()
	for _, want := range []string{"minify 3/3", "1 cached", "1 failed", "a.js", "c.js"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}

	if _, cmd := m.Update(doneMsg{}); cmd == nil || !m.done {
		t.Error("doneMsg must quit")
	}
	if !strings.Contains(m.View(), "done: minify") {
		t.Errorf("final view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.js", 20, "short.js"},
		{"src/very/long/path/file.js", 12, "src/very/..."},
		{"abcdef", 3, "abc"},
		{"日本語.js", 6, "日..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
