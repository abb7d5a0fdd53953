package schem

import (
	"math/bits"

	"voxedit.dev/internal/nbt"
)

// bitsPerEntry returns the fixed entry width Litematica uses for a palette of
// the given size: at least 2, otherwise just enough bits for the largest
// index.
func bitsPerEntry(paletteSize int) int {
	if paletteSize <= 1 {
		return 2
	}
	n := bits.Len(uint(paletteSize - 1))
	if n < 2 {
		n = 2
	}
	return n
}

// packEntries stores fixed-width values back to back in 64-bit words,
// starting at bit 0 of the first word. Entries straddle word boundaries;
// there is no per-word padding.
func packEntries(vals []int, width int) []int64 {
	total := len(vals) * width
	longs := make([]int64, (total+63)/64)
	for i, v := range vals {
		start := i * width
		li := start >> 6
		off := uint(start & 63)
		longs[li] |= int64(uint64(v) << off)
		if off+uint(width) > 64 {
			longs[li+1] |= int64(uint64(v) >> (64 - off))
		}
	}
	return longs
}

// unpackEntries reverses packEntries for count entries of the given width.
func unpackEntries(longs []int64, count, width int) ([]int, error) {
	// The packed array must hold count entries of width bits before
	// anything is allocated for the output.
	if count < 0 || count > len(longs)*64/width {
		return nil, &nbt.FormatError{Reason: "block state array too short"}
	}
	mask := uint64(1)<<width - 1
	out := make([]int, count)
	for i := 0; i < count; i++ {
		start := i * width
		li := start >> 6
		off := uint(start & 63)
		if li >= len(longs) {
			return nil, &nbt.FormatError{Reason: "block state array too short"}
		}
		v := uint64(longs[li]) >> off
		if off+uint(width) > 64 {
			if li+1 >= len(longs) {
				return nil, &nbt.FormatError{Reason: "block state array too short"}
			}
			v |= uint64(longs[li+1]) << (64 - off)
		}
		out[i] = int(v & mask)
	}
	return out, nil
}
