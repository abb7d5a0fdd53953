// Package edittest hosts an in-memory world accessor and black-box
// tests for the edit engine.
package edittest

import (
	"sync"

	"voxedit.dev/internal/block"
)

// World is a sparse in-memory world. Unset positions read as air.
// ReadBlock/WriteBlock count accessor calls so tests can assert that a
// rejected operation never touched the world.
type World struct {
	mu     sync.Mutex
	blocks map[block.Pos]block.State
	reads  int
	writes int
}

func NewWorld() *World {
	return &World{blocks: make(map[block.Pos]block.State)}
}

func (w *World) ReadBlock(p block.Pos) block.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reads++
	if s, ok := w.blocks[p]; ok {
		return s
	}
	return block.Air
}

func (w *World) WriteBlock(p block.Pos, s block.State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes++
	if s.IsAir() {
		delete(w.blocks, p)
		return
	}
	w.blocks[p] = s
}

// Seed places a block without counting an accessor call.
func (w *World) Seed(p block.Pos, s block.State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s.IsAir() {
		delete(w.blocks, p)
		return
	}
	w.blocks[p] = s
}

// SeedBox fills an inclusive box without counting accessor calls.
func (w *World) SeedBox(min, max block.Pos, s block.State) {
	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			for x := min.X; x <= max.X; x++ {
				w.Seed(block.Pos{X: x, Y: y, Z: z}, s)
			}
		}
	}
}

// BlockAt inspects a position without counting an accessor call.
func (w *World) BlockAt(p block.Pos) block.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.blocks[p]; ok {
		return s
	}
	return block.Air
}

// Count returns how many stored positions hold s. Air is never stored.
func (w *World) Count(s block.State) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, got := range w.blocks {
		if got == s {
			n++
		}
	}
	return n
}

// Calls reports the accessor call totals so far.
func (w *World) Calls() (reads, writes int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reads, w.writes
}
