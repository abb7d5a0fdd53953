// Package schem converts between serialized voxel schematics and the
// in-memory block volume. Two formats are supported: Sponge .schem (versions
// 2 and 3) and Litematica .litematic. Both are gzip-compressed NBT documents;
// format detection, tree parsing, and field extraction are separate stages so
// a failure at any stage leaves no partial volume behind.
package schem

import (
	"voxedit.dev/internal/block"
	"voxedit.dev/internal/nbt"
)

// Decode parses a serialized schematic in either supported format.
func Decode(data []byte) (*block.Volume, error) {
	_, root, err := nbt.ReadCompressed(data)
	if err != nil {
		return nil, err
	}
	if _, err := root.AsCompound(); err != nil {
		return nil, err
	}
	// Litematica is the only format with a Regions compound at the root.
	if _, ok := root.Get("Regions"); ok {
		return decodeLitematica(root)
	}
	return decodeSponge(root)
}
