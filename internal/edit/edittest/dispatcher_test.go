package edittest

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/edit"
)

func TestPlanThenApplySplit(t *testing.T) {
	w := NewWorld()
	s := newSession()

	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{X: 2})

	// Plan off-thread: reads happen, no writes yet.
	p, err := s.PlanFill(w, stone)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if reads, writes := w.Calls(); reads != 3 || writes != 0 {
		t.Fatalf("planning: reads=%d writes=%d, want 3/0", reads, writes)
	}
	if p.Count() != 3 {
		t.Fatalf("plan count = %d, want 3", p.Count())
	}
	// Undo slot installs at apply, not at plan.
	if s.HasUndo() {
		t.Fatalf("plan installed undo before apply")
	}

	if n := p.Apply(w); n != 3 {
		t.Fatalf("apply returned %d, want 3", n)
	}
	if !s.HasUndo() {
		t.Fatalf("apply did not install undo")
	}
	if got := w.Count(stone); got != 3 {
		t.Fatalf("world has %d stone, want 3", got)
	}
}

// countingWriter asserts single-goroutine apply: a data race here fails
// under -race if two batches ever interleave.
type countingWriter struct {
	w       *World
	applied int
}

func (c *countingWriter) WriteBlock(p block.Pos, s block.State) {
	c.applied++
	c.w.WriteBlock(p, s)
}

func TestDispatcherSerializesBatches(t *testing.T) {
	w := NewWorld()
	cw := &countingWriter{w: w}
	d := edit.NewDispatcher(cw)
	defer d.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := newSession()
			s.SetPos1(block.Pos{X: i * 10})
			s.SetPos2(block.Pos{X: i*10 + 4})
			if n, err := s.Fill(w, d, stone); err != nil || n != 5 {
				t.Errorf("fill %d: n=%d err=%v", i, n, err)
			}
		}(i)
	}
	wg.Wait()
	if cw.applied != 16*5 {
		t.Fatalf("writer saw %d writes, want %d", cw.applied, 16*5)
	}
}

func TestApplyBatchAfterCloseReturnsZero(t *testing.T) {
	w := NewWorld()
	d := edit.NewDispatcher(w)
	d.Close()

	s := newSession()
	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{X: 2})
	p, err := s.PlanFill(w, stone)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	done := make(chan int, 1)
	go func() { done <- d.ApplyBatch(p) }()
	select {
	case n := <-done:
		if n != 0 {
			t.Fatalf("ApplyBatch after Close returned %d, want 0", n)
		}
	case <-time.After(time.Second):
		t.Fatalf("ApplyBatch after Close blocked")
	}
	if _, writes := w.Calls(); writes != 0 {
		t.Fatalf("discarded batch wrote %d cells", writes)
	}
	if s.HasUndo() {
		t.Fatalf("discarded batch installed an undo snapshot")
	}
}

type recordingSink struct {
	mu      sync.Mutex
	entries []edit.AuditEntry
}

func (r *recordingSink) Record(e edit.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func TestAppliedBatchesAreAudited(t *testing.T) {
	sink := &recordingSink{}
	r := edit.NewRegistry(sink)
	w := NewWorld()
	a := edit.Direct{W: w}

	s := r.Session(uuid.New())
	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{X: 1})
	if _, err := s.Fill(w, a, stone); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if _, err := s.Undo(a); err != nil {
		t.Fatalf("undo: %v", err)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.entries) != 2 {
		t.Fatalf("audited %d entries, want 2", len(sink.entries))
	}
	if sink.entries[0].Op != "fill" || sink.entries[0].Cells != 2 {
		t.Fatalf("first entry = %+v", sink.entries[0])
	}
	if sink.entries[0].Dims != [3]int{2, 1, 1} || sink.entries[0].Origin != [3]int{0, 0, 0} {
		t.Fatalf("first entry footprint = %+v", sink.entries[0])
	}
	if sink.entries[1].Op != "undo" {
		t.Fatalf("second entry = %+v", sink.entries[1])
	}
	if sink.entries[0].Player != s.ID().String() {
		t.Fatalf("entry player = %q", sink.entries[0].Player)
	}
}
