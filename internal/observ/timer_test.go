package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimer_Phases(t *testing.T) {
	tm := NewTimer()
	i := tm.Begin("parse")
	tm.End(i, "1 file")
	tm.Measure("compress", func() {})
	tm.End(99, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "parse" || rep.Phases[0].Note != "1 file" {
		t.Errorf("first phase = %+v", rep.Phases[0])
	}
	s := tm.Summary()
	for _, want := range []string{"timings:", "parse", "compress", "// 1 file", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary misses %q:\n%s", want, s)
		}
	}
}

func TestTimer_Concurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Measure("file", func() {})
		}()
	}
	wg.Wait()
	if n := len(tm.Report().Phases); n != 16 {
		t.Errorf("phases = %d, want 16", n)
	}
}

func TestTimer_NilMeasure(t *testing.T) {
	var tm *Timer
	ran := false
	tm.Measure("x", func() { ran = true })
	if !ran {
		t.Error("nil timer must still run the function")
	}
}
