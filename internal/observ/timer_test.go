package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "3 files")
	done := tm.Track("format")
	done("")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "load" || r.Phases[1].Name != "format" {
		t.Fatalf("unexpected phases %+v", r.Phases)
	}
	if r.Phases[0].Note != "3 files" {
		t.Fatalf("note lost: %+v", r.Phases[0])
	}
	if s := tm.Summary(); !strings.Contains(s, "load") || !strings.Contains(s, "// 3 files") || !strings.Contains(s, "total") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}

func TestTimerAddConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("lex+parse", time.Millisecond)
		}()
	}
	wg.Wait()

	r := tm.Report()
	if len(r.Phases) != 1 {
		t.Fatalf("expected one aggregated phase, got %+v", r.Phases)
	}
	p := r.Phases[0]
	if p.Count != 16 || p.DurationMS != 16 {
		t.Fatalf("unexpected aggregate %+v", p)
	}
	if !strings.Contains(tm.Summary(), "x16") {
		t.Fatalf("summary must show the count:\n%s", tm.Summary())
	}
}

func TestNilTimerIsSafe(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("y", time.Second)
	tm.Track("z")("")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer reported %+v", r)
	}
}

func TestEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "ignored")
	tm.End(-1, "ignored")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("unexpected phases %+v", r.Phases)
	}
}
