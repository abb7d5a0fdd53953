package schem

import (
	"fmt"
	"log"
	"sort"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/nbt"
)

// maxRegionDim caps a region axis: Size comes straight from the file, and an
// unchecked product of three axes can wrap or demand an absurd allocation.
const maxRegionDim = 1 << 20

// decodeLitematica extracts a volume from a .litematic document. Multi-region
// files are accepted, but only the primary region (lexicographically first
// name, for determinism) is imported.
func decodeLitematica(root nbt.Tag) (*block.Volume, error) {
	rt, err := root.Field("Regions")
	if err != nil {
		return nil, err
	}
	regions, err := rt.AsCompound()
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, &nbt.FormatError{Reason: "no regions"}
	}
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 1 {
		log.Printf("schem: %d regions present, importing %q only", len(names), names[0])
	}
	region := regions[names[0]]
	if _, err := region.AsCompound(); err != nil {
		return nil, err
	}

	pos, err := vec3Field(region, "Position")
	if err != nil {
		return nil, err
	}
	size, err := vec3Field(region, "Size")
	if err != nil {
		return nil, err
	}

	// A negative size axis means the region extends in the negative direction
	// from Position; normalize to non-negative dims and an adjusted min corner.
	min, dims := pos, size
	if size.X < 0 {
		min.X, dims.X = pos.X+size.X+1, -size.X
	}
	if size.Y < 0 {
		min.Y, dims.Y = pos.Y+size.Y+1, -size.Y
	}
	if size.Z < 0 {
		min.Z, dims.Z = pos.Z+size.Z+1, -size.Z
	}
	if dims.X == 0 || dims.Y == 0 || dims.Z == 0 {
		return nil, &nbt.FormatError{Reason: "empty region"}
	}
	if dims.X > maxRegionDim || dims.Y > maxRegionDim || dims.Z > maxRegionDim {
		return nil, &nbt.FormatError{Reason: fmt.Sprintf("region size %dx%dx%d out of range", dims.X, dims.Y, dims.Z)}
	}

	palette, err := readStatePalette(region)
	if err != nil {
		return nil, err
	}

	st, err := region.Field("BlockStates")
	if err != nil {
		return nil, err
	}
	longs, err := st.AsLongArray()
	if err != nil {
		return nil, err
	}
	total := dims.X * dims.Y * dims.Z
	indices, err := unpackEntries(longs, total, bitsPerEntry(len(palette)))
	if err != nil {
		return nil, err
	}

	vol, err := block.NewVolume(dims.X, dims.Y, dims.Z, min)
	if err != nil {
		return nil, &nbt.FormatError{Reason: err.Error()}
	}
	for i, idx := range indices {
		if idx >= len(palette) {
			return nil, &nbt.FormatError{Reason: "palette index out of range"}
		}
		vol.SetIndex(i, palette[idx])
	}

	crossCheckEnclosingSize(root, dims)
	return vol, nil
}

// readStatePalette parses BlockStatePalette: an ordered list of compounds,
// each a Name plus an optional Properties compound of string values.
func readStatePalette(region nbt.Tag) ([]block.State, error) {
	pt, err := region.Field("BlockStatePalette")
	if err != nil {
		return nil, err
	}
	elem, items, err := pt.AsList()
	if err != nil {
		return nil, err
	}
	if len(items) > 0 && elem != nbt.KindCompound {
		return nil, &nbt.FormatError{Reason: fmt.Sprintf("palette entries of kind %s", elem)}
	}
	palette := make([]block.State, 0, len(items))
	for _, item := range items {
		nt, err := item.Field("Name")
		if err != nil {
			return nil, err
		}
		name, err := nt.AsString()
		if err != nil {
			return nil, err
		}
		var props map[string]string
		if prt, ok := item.Get("Properties"); ok {
			children, err := prt.AsCompound()
			if err != nil {
				return nil, err
			}
			props = make(map[string]string, len(children))
			for k, vt := range children {
				v, err := vt.AsString()
				if err != nil {
					return nil, err
				}
				props[k] = v
			}
		}
		palette = append(palette, block.Make(name, props))
	}
	return palette, nil
}

// vec3Field reads a 3-int vector stored either as a compound of x/y/z ints or
// as a 3-element int array; Litematica files in the wild carry both shapes.
func vec3Field(c nbt.Tag, name string) (block.Pos, error) {
	f, err := c.Field(name)
	if err != nil {
		return block.Pos{}, err
	}
	switch f.Kind() {
	case nbt.KindCompound:
		x, err := intField(f, "x")
		if err != nil {
			return block.Pos{}, err
		}
		y, err := intField(f, "y")
		if err != nil {
			return block.Pos{}, err
		}
		z, err := intField(f, "z")
		if err != nil {
			return block.Pos{}, err
		}
		return block.Pos{X: x, Y: y, Z: z}, nil
	case nbt.KindIntArray:
		arr, _ := f.AsIntArray()
		if len(arr) < 3 {
			return block.Pos{}, &nbt.FormatError{Reason: fmt.Sprintf("%s has %d components", name, len(arr))}
		}
		return block.Pos{X: int(arr[0]), Y: int(arr[1]), Z: int(arr[2])}, nil
	default:
		return block.Pos{}, &nbt.FormatError{Reason: fmt.Sprintf("%s of kind %s", name, f.Kind())}
	}
}

func intField(c nbt.Tag, name string) (int, error) {
	f, err := c.Field(name)
	if err != nil {
		return 0, err
	}
	v, err := f.AsInt()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// crossCheckEnclosingSize compares the imported dims against the root
// Metadata, when present. Mismatches are logged, never fatal: the metadata
// describes the whole file, and we import one region.
func crossCheckEnclosingSize(root nbt.Tag, dims block.Pos) {
	meta, ok := root.Get("Metadata")
	if !ok {
		return
	}
	enc, ok := meta.Get("EnclosingSize")
	if !ok {
		return
	}
	x, errX := intField(enc, "x")
	y, errY := intField(enc, "y")
	z, errZ := intField(enc, "z")
	if errX != nil || errY != nil || errZ != nil {
		return
	}
	if x != dims.X || y != dims.Y || z != dims.Z {
		log.Printf("schem: region %dx%dx%d disagrees with EnclosingSize %dx%dx%d",
			dims.X, dims.Y, dims.Z, x, y, z)
	}
}
