package schem

import "voxedit.dev/internal/nbt"

// Sponge BlockData packs one palette index per cell as a little-endian
// varint: 7 payload bits per byte, high bit set while more bytes follow.
// Indices never exceed 32 bits, so anything needing a sixth byte is corrupt.
const maxVarintBits = 35

func appendVarint(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

func encodeVarints(vals []int) []byte {
	out := make([]byte, 0, len(vals))
	for _, v := range vals {
		out = appendVarint(out, uint32(v))
	}
	return out
}

// decodeVarints reads exactly count varints and requires the input to end
// there: a cell count mismatch means the file disagrees with its own
// dimensions.
func decodeVarints(data []byte, count int) ([]int, error) {
	// Every varint occupies at least one byte, so the input must be at
	// least count bytes long before anything is allocated.
	if count < 0 || count > len(data) {
		return nil, &nbt.FormatError{Reason: "truncated block data"}
	}
	out := make([]int, 0, count)
	i := 0
	for len(out) < count {
		var v uint64
		shift := 0
		for {
			if i >= len(data) {
				return nil, &nbt.FormatError{Reason: "truncated block data"}
			}
			b := data[i]
			i++
			v |= uint64(b&0x7f) << shift
			shift += 7
			if b&0x80 == 0 {
				break
			}
			if shift >= maxVarintBits {
				return nil, &nbt.FormatError{Reason: "varint too large"}
			}
		}
		out = append(out, int(uint32(v)))
	}
	if i != len(data) {
		return nil, &nbt.FormatError{Reason: "block data longer than volume"}
	}
	return out, nil
}
