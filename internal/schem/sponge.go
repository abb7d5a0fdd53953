package schem

import (
	"fmt"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/nbt"
)

// Data version written into saved schematics (Minecraft 1.21.11).
const mcDataVersion = 4671

// Width, Height and Length are short-valued in the Sponge header.
const maxSpongeDim = 0x7fff

// decodeSponge extracts a volume from a Sponge .schem document. Version 2
// keeps its fields in the root compound; version 3 nests the same fields one
// level deeper under "Schematic".
func decodeSponge(root nbt.Tag) (*block.Volume, error) {
	data := root
	nested := false
	if inner, ok := root.Get("Schematic"); ok {
		var err error
		if _, err = inner.AsCompound(); err != nil {
			return nil, err
		}
		data = inner
		nested = true
	}

	version := int32(2)
	if nested {
		version = 3
	}
	if vt, ok := data.Get("Version"); ok {
		v, err := vt.AsInt()
		if err != nil {
			return nil, err
		}
		version = v
	}
	if version != 2 && version != 3 {
		return nil, &nbt.FormatError{Reason: "unsupported version"}
	}

	w, err := shortField(data, "Width")
	if err != nil {
		return nil, err
	}
	h, err := shortField(data, "Height")
	if err != nil {
		return nil, err
	}
	l, err := shortField(data, "Length")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 || l <= 0 {
		return nil, &nbt.FormatError{Reason: fmt.Sprintf("bad dimensions %dx%dx%d", w, h, l)}
	}

	origin := block.Pos{}
	if ot, ok := data.Get("Offset"); ok {
		off, err := ot.AsIntArray()
		if err != nil {
			return nil, err
		}
		if len(off) >= 3 {
			origin = block.Pos{X: int(off[0]), Y: int(off[1]), Z: int(off[2])}
		}
	}

	pt, err := data.Field("Palette")
	if err != nil {
		return nil, err
	}
	entries, err := pt.AsCompound()
	if err != nil {
		return nil, err
	}
	palette := map[int]block.State{}
	for name, tag := range entries {
		idx, err := tag.AsInt()
		if err != nil {
			return nil, err
		}
		state, err := block.Parse(name)
		if err != nil {
			return nil, &nbt.FormatError{Reason: fmt.Sprintf("bad palette entry %q", name)}
		}
		palette[int(idx)] = state
	}

	bt, err := data.Field("BlockData")
	if err != nil {
		return nil, err
	}
	raw, err := bt.AsByteArray()
	if err != nil {
		return nil, err
	}
	total := w * h * l
	indices, err := decodeVarints(raw, total)
	if err != nil {
		return nil, err
	}

	vol, err := block.NewVolume(w, h, l, origin)
	if err != nil {
		return nil, &nbt.FormatError{Reason: err.Error()}
	}
	for i, idx := range indices {
		state, ok := palette[idx]
		if !ok {
			return nil, &nbt.FormatError{Reason: "palette index out of range"}
		}
		vol.SetIndex(i, state)
	}
	return vol, nil
}

func shortField(c nbt.Tag, name string) (int, error) {
	f, err := c.Field(name)
	if err != nil {
		return 0, err
	}
	v, err := f.AsShort()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// EncodeSponge serializes the volume as a gzip-compressed Sponge v2
// schematic. The palette is assigned in first-seen cell order, air included;
// the offset written is always (0,0,0) since a clipboard volume re-anchors on
// paste.
func EncodeSponge(v *block.Volume) ([]byte, error) {
	w, h, l := v.Dims()
	if w > maxSpongeDim || h > maxSpongeDim || l > maxSpongeDim {
		return nil, &nbt.FormatError{Reason: fmt.Sprintf("dims %dx%dx%d do not fit the short-valued header", w, h, l)}
	}

	palette := map[block.State]int{}
	names := []string{}
	indices := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		s := v.AtIndex(i)
		idx, ok := palette[s]
		if !ok {
			idx = len(names)
			palette[s] = idx
			names = append(names, s.String())
		}
		indices = append(indices, idx)
	}

	paletteTag := make(map[string]nbt.Tag, len(names))
	for i, name := range names {
		paletteTag[name] = nbt.Int(int32(i))
	}

	root := nbt.Compound(map[string]nbt.Tag{
		"Version":     nbt.Int(2),
		"DataVersion": nbt.Int(mcDataVersion),
		"Width":       nbt.Short(int16(w)),
		"Height":      nbt.Short(int16(h)),
		"Length":      nbt.Short(int16(l)),
		"Offset":      nbt.IntArray([]int32{0, 0, 0}),
		"Palette":     nbt.Compound(paletteTag),
		"PaletteMax":  nbt.Int(int32(len(names))),
		"BlockData":   nbt.ByteArray(encodeVarints(indices)),
	})
	return nbt.WriteCompressed("Schematic", root)
}
