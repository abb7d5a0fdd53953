package block

import "testing"

func TestVolume_IndexOrder(t *testing.T) {
	v, err := NewVolume(2, 3, 4, Pos{})
	if err != nil {
		t.Fatalf("NewVolume: %v", err)
	}
	// Flat order is y outer, z middle, x inner.
	if got := v.Index(1, 0, 0); got != 1 {
		t.Fatalf("Index(1,0,0) = %d want 1", got)
	}
	if got := v.Index(0, 0, 1); got != 2 {
		t.Fatalf("Index(0,0,1) = %d want 2", got)
	}
	if got := v.Index(0, 1, 0); got != 8 {
		t.Fatalf("Index(0,1,0) = %d want 8", got)
	}
	if got := v.Index(1, 2, 3); got != (2*4+3)*2+1 {
		t.Fatalf("Index(1,2,3) = %d", got)
	}
}

func TestVolume_SetAtAndForEach(t *testing.T) {
	v, err := NewVolume(2, 2, 2, Pos{X: 5, Y: 6, Z: 7})
	if err != nil {
		t.Fatalf("NewVolume: %v", err)
	}
	stone := Make("minecraft:stone", nil)
	v.Set(1, 0, 1, stone)
	if got := v.At(1, 0, 1); got != stone {
		t.Fatalf("At(1,0,1) = %v", got)
	}
	if got := v.At(0, 0, 0); got != Air {
		t.Fatalf("fresh cell not air: %v", got)
	}
	if got := v.At(9, 0, 0); got != Air {
		t.Fatalf("out-of-range read should be air, got %v", got)
	}

	n, stones := 0, 0
	v.ForEach(func(x, y, z int, s State) {
		if v.At(x, y, z) != s {
			t.Fatalf("ForEach order mismatch at (%d,%d,%d)", x, y, z)
		}
		if s == stone {
			stones++
		}
		n++
	})
	if n != 8 || stones != 1 {
		t.Fatalf("ForEach visited %d cells, %d stone", n, stones)
	}
}

func TestVolume_BadDims(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		if _, err := NewVolume(dims[0], dims[1], dims[2], Pos{}); err == nil {
			t.Fatalf("NewVolume(%v) succeeded", dims)
		}
	}
}

func TestVolume_Equal(t *testing.T) {
	a, _ := NewVolume(2, 1, 1, Pos{})
	b, _ := NewVolume(2, 1, 1, Pos{X: 9})
	if !a.Equal(b) {
		t.Fatalf("volumes with different origins should compare equal")
	}
	b.Set(0, 0, 0, Make("minecraft:stone", nil))
	if a.Equal(b) {
		t.Fatalf("volumes with different cells compare equal")
	}
	c, _ := NewVolume(1, 2, 1, Pos{})
	if a.Equal(c) {
		t.Fatalf("volumes with different dims compare equal")
	}
}
