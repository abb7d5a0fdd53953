package edit

import "voxedit.dev/internal/block"

// MaxBlocks caps the cell count any single selection-driven operation
// may touch. Larger selections are rejected before the first accessor
// call, so over-cap commands never partially apply.
const MaxBlocks = 100_000

// Selection is an axis-aligned region defined by two opposite corners.
// Either corner may be set first; bounds are derived component-wise.
type Selection struct {
	pos1, pos2 block.Pos
	has1, has2 bool
}

func (s *Selection) SetPos1(p block.Pos) { s.pos1, s.has1 = p, true }
func (s *Selection) SetPos2(p block.Pos) { s.pos2, s.has2 = p, true }

func (s *Selection) Reset() { *s = Selection{} }

func (s *Selection) Complete() bool { return s.has1 && s.has2 }

// Bounds returns the inclusive min and max corners, or
// ErrSelectionIncomplete if either corner is unset.
func (s *Selection) Bounds() (min, max block.Pos, err error) {
	if !s.Complete() {
		return block.Pos{}, block.Pos{}, ErrSelectionIncomplete
	}
	return block.MinCorner(s.pos1, s.pos2), block.MaxCorner(s.pos1, s.pos2), nil
}

// Dims returns the per-axis extent (max-min+1).
func (s *Selection) Dims() (block.Pos, error) {
	min, max, err := s.Bounds()
	if err != nil {
		return block.Pos{}, err
	}
	return max.Sub(min).Add(block.Pos{X: 1, Y: 1, Z: 1}), nil
}

// Volume returns the cell count of the selection's footprint.
func (s *Selection) Volume() (int, error) {
	d, err := s.Dims()
	if err != nil {
		return 0, err
	}
	return d.X * d.Y * d.Z, nil
}

// footprint validates completeness and the MaxBlocks cap, then returns
// the min corner and dims. Every mutating or copy operation admits its
// selection through here before reading a single block.
func (s *Selection) footprint() (min, dims block.Pos, err error) {
	min, max, err := s.Bounds()
	if err != nil {
		return block.Pos{}, block.Pos{}, err
	}
	dims = max.Sub(min).Add(block.Pos{X: 1, Y: 1, Z: 1})
	// Per-axis checks first, so the product cannot wrap on huge spans.
	if dims.X > MaxBlocks || dims.Y > MaxBlocks || dims.Z > MaxBlocks ||
		dims.X*dims.Y*dims.Z > MaxBlocks {
		return block.Pos{}, block.Pos{}, ErrSelectionTooLarge
	}
	return min, dims, nil
}
