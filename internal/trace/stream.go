package trace

import (
	"io"
	"sync"
)

// StreamTracer formats every event as soon as it arrives. Write errors are
// dropped: tracing never fails a minification.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	n      int
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	t := &StreamTracer{w: w, level: level, format: format}
	if format == FormatChrome {
		t.write([]byte(chromeHeader))
	}
	return t
}

const (
	chromeHeader = "{\"traceEvents\":[\n"
	chromeSep    = ",\n"
	chromeFooter = "\n]}\n"
)

func (t *StreamTracer) write(p []byte) {
	_, _ = t.w.Write(p) //nolint:errcheck
}

func (t *StreamTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.format == FormatChrome && t.n > 0 {
		t.write([]byte(chromeSep))
	}
	t.n++
	t.write(data)
}

// Flush forwards to the writer when it buffers.
func (t *StreamTracer) Flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close terminates a Chrome document, flushes and closes the writer when
// it is closable.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	if t.format == FormatChrome {
		t.write([]byte(chromeFooter))
	}
	t.mu.Unlock()

	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
