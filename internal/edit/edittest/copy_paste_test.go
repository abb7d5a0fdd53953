package edittest

import (
	"errors"
	"testing"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/edit"
)

func TestCopyPasteAnchored(t *testing.T) {
	w := NewWorld()
	s := newSession()
	a := edit.Direct{W: w}

	w.SeedBox(block.Pos{}, block.Pos{X: 2, Y: 2, Z: 2}, stone)
	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{X: 2, Y: 2, Z: 2})

	n, err := s.Copy(w, block.Pos{})
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != 27 {
		t.Fatalf("copied %d cells, want 27", n)
	}

	n, err = s.Paste(w, a, block.Pos{X: 10, Y: 0, Z: 0})
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	if n != 27 {
		t.Fatalf("pasted %d cells, want 27", n)
	}
	for y := 0; y < 3; y++ {
		for z := 0; z < 3; z++ {
			for x := 10; x <= 12; x++ {
				p := block.Pos{X: x, Y: y, Z: z}
				if got := w.BlockAt(p); got != stone {
					t.Fatalf("pasted cell %v = %v, want stone", p, got)
				}
			}
		}
	}
	if got := w.BlockAt(block.Pos{X: 13}); got != block.Air {
		t.Fatalf("cell outside paste box = %v, want air", got)
	}
}

func TestPasteCaptureOffsetReanchors(t *testing.T) {
	w := NewWorld()
	s := newSession()
	a := edit.Direct{W: w}

	// Selection min (5,0,5), player at (6,0,7): offset (1,0,2), so a
	// paste at target T lands at T-(1,0,2).
	w.Seed(block.Pos{X: 5, Y: 0, Z: 5}, stone)
	s.SetPos1(block.Pos{X: 5, Y: 0, Z: 5})
	s.SetPos2(block.Pos{X: 5, Y: 0, Z: 5})
	if _, err := s.Copy(w, block.Pos{X: 6, Y: 0, Z: 7}); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if _, err := s.Paste(w, a, block.Pos{X: 20, Y: 0, Z: 20}); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if got := w.BlockAt(block.Pos{X: 19, Y: 0, Z: 18}); got != stone {
		t.Fatalf("paste landed wrong: %v", got)
	}
}

func TestPasteWritesAirCells(t *testing.T) {
	w := NewWorld()
	s := newSession()
	a := edit.Direct{W: w}

	// Clipboard holds one air and one stone cell; pasting over glass
	// must overwrite both.
	w.Seed(block.Pos{X: 1}, stone)
	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{X: 1})
	if _, err := s.Copy(w, block.Pos{}); err != nil {
		t.Fatalf("copy: %v", err)
	}

	w.Seed(block.Pos{X: 10}, glass)
	w.Seed(block.Pos{X: 11}, glass)
	if _, err := s.Paste(w, a, block.Pos{X: 10}); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if got := w.BlockAt(block.Pos{X: 10}); got != block.Air {
		t.Fatalf("air cell not pasted: %v", got)
	}
	if got := w.BlockAt(block.Pos{X: 11}); got != stone {
		t.Fatalf("stone cell not pasted: %v", got)
	}
}

func TestPasteUndoRestoresDestination(t *testing.T) {
	w := NewWorld()
	s := newSession()
	a := edit.Direct{W: w}

	w.Seed(block.Pos{}, stone)
	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{})
	if _, err := s.Copy(w, block.Pos{}); err != nil {
		t.Fatalf("copy: %v", err)
	}

	w.Seed(block.Pos{X: 10}, glass)
	if _, err := s.Paste(w, a, block.Pos{X: 10}); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if _, err := s.Undo(a); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := w.BlockAt(block.Pos{X: 10}); got != glass {
		t.Fatalf("destination = %v after undo, want glass", got)
	}
}

func TestPasteWithoutClipboard(t *testing.T) {
	s := newSession()
	w := NewWorld()
	if _, err := s.Paste(w, edit.Direct{W: w}, block.Pos{}); !errors.Is(err, edit.ErrNoClipboard) {
		t.Fatalf("err = %v, want ErrNoClipboard", err)
	}
}

func TestCopyReplacesClipboard(t *testing.T) {
	w := NewWorld()
	s := newSession()

	w.Seed(block.Pos{}, stone)
	s.SetPos1(block.Pos{})
	s.SetPos2(block.Pos{})
	if _, err := s.Copy(w, block.Pos{}); err != nil {
		t.Fatalf("first copy: %v", err)
	}

	w.Seed(block.Pos{}, glass)
	if _, err := s.Copy(w, block.Pos{}); err != nil {
		t.Fatalf("second copy: %v", err)
	}
	vol, err := s.Clipboard()
	if err != nil {
		t.Fatalf("clipboard: %v", err)
	}
	if got := vol.At(0, 0, 0); got != glass {
		t.Fatalf("clipboard cell = %v, want glass", got)
	}
}
