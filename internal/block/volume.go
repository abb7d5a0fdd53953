package block

import "fmt"

// Volume is a dense 3D array of block states over explicit dimensions, plus
// an origin anchoring it in the world. It is the shared currency between the
// schematic codec and the region engine.
//
// Cells are stored in (y,z,x) order: the cell at (x,y,z) lives at flat index
// (y*l + z)*w + x. Both supported schematic formats serialize in this order,
// so codecs copy runs straight through.
type Volume struct {
	w, h, l int
	origin  Pos
	cells   []State
}

// NewVolume allocates a volume of the given dimensions filled with air.
func NewVolume(w, h, l int, origin Pos) (*Volume, error) {
	if w <= 0 || h <= 0 || l <= 0 {
		return nil, fmt.Errorf("bad volume dimensions %dx%dx%d", w, h, l)
	}
	cells := make([]State, w*h*l)
	for i := range cells {
		cells[i] = Air
	}
	return &Volume{w: w, h: h, l: l, origin: origin, cells: cells}, nil
}

// Dims returns width, height, length.
func (v *Volume) Dims() (w, h, l int) { return v.w, v.h, v.l }

// Len returns the cell count, always w*h*l.
func (v *Volume) Len() int { return len(v.cells) }

func (v *Volume) Origin() Pos     { return v.origin }
func (v *Volume) SetOrigin(p Pos) { v.origin = p }

// Index maps local coordinates to the flat cell index.
func (v *Volume) Index(x, y, z int) int {
	return (y*v.l+z)*v.w + x
}

// At returns the state at local coordinates. Out-of-range coordinates return
// air; codecs and the engine only index within [0,w)x[0,h)x[0,l).
func (v *Volume) At(x, y, z int) State {
	if x < 0 || x >= v.w || y < 0 || y >= v.h || z < 0 || z >= v.l {
		return Air
	}
	return v.cells[v.Index(x, y, z)]
}

func (v *Volume) Set(x, y, z int, s State) {
	if x < 0 || x >= v.w || y < 0 || y >= v.h || z < 0 || z >= v.l {
		return
	}
	v.cells[v.Index(x, y, z)] = s
}

// AtIndex returns the state at a flat index in (y,z,x) order.
func (v *Volume) AtIndex(i int) State { return v.cells[i] }

// SetIndex stores a state at a flat index in (y,z,x) order.
func (v *Volume) SetIndex(i int, s State) { v.cells[i] = s }

// ForEach visits every cell in flat order, passing local coordinates.
func (v *Volume) ForEach(fn func(x, y, z int, s State)) {
	i := 0
	for y := 0; y < v.h; y++ {
		for z := 0; z < v.l; z++ {
			for x := 0; x < v.w; x++ {
				fn(x, y, z, v.cells[i])
				i++
			}
		}
	}
}

// Equal reports cell-for-cell equality of dimensions and contents. Origins
// are placement metadata and not compared.
func (v *Volume) Equal(o *Volume) bool {
	if v.w != o.w || v.h != o.h || v.l != o.l {
		return false
	}
	for i := range v.cells {
		if v.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
