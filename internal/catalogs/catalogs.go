// Package catalogs loads the block catalog: the set of block
// identifiers commands may name. Resolution turns a user-supplied
// block string into a block.State, rejecting identifiers the catalog
// does not carry.
package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"voxedit.dev/internal/block"
)

var ErrUnknownBlock = errors.New("unknown block identifier")

const airID = "minecraft:air"

type BlockDef struct {
	ID    string `json:"id"`
	Solid bool   `json:"solid"`
}

type BlockCatalog struct {
	Defs    map[string]BlockDef
	Palette []string // air first, then sorted
	Index   map[string]uint16

	DefsDigest    string
	PaletteDigest string
}

// Load reads blocks.json from configDir.
func Load(configDir string) (*BlockCatalog, error) {
	raw, err := os.ReadFile(filepath.Join(configDir, "blocks.json"))
	if err != nil {
		return nil, err
	}
	var defs []BlockDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("blocks.json: %w", err)
	}
	c, err := build(defs)
	if err != nil {
		return nil, fmt.Errorf("blocks.json: %w", err)
	}
	c.DefsDigest = sha256Hex(raw)
	return c, nil
}

// Builtin returns the compiled-in catalog, for hosts running without a
// config directory.
func Builtin() *BlockCatalog {
	c, err := build(builtinDefs)
	if err != nil {
		panic(err)
	}
	raw, _ := json.Marshal(builtinDefs)
	c.DefsDigest = sha256Hex(raw)
	return c
}

func build(defs []BlockDef) (*BlockCatalog, error) {
	out := &BlockCatalog{Defs: map[string]BlockDef{}}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("empty id")
		}
		out.Defs[d.ID] = d
	}
	if _, ok := out.Defs[airID]; !ok {
		return nil, fmt.Errorf("missing %s", airID)
	}

	ids := make([]string, 0, len(out.Defs))
	for id := range out.Defs {
		if id != airID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	ids = append([]string{airID}, ids...)

	out.Palette = ids
	out.Index = make(map[string]uint16, len(ids))
	for i, id := range ids {
		out.Index[id] = uint16(i)
	}
	palJSON, _ := json.Marshal(ids)
	out.PaletteDigest = sha256Hex(palJSON)
	return out, nil
}

// Resolve parses a user-supplied block string (identifier plus optional
// bracketed properties) and checks the identifier against the catalog.
func (c *BlockCatalog) Resolve(s string) (block.State, error) {
	st, err := block.Parse(s)
	if err != nil {
		return block.State{}, err
	}
	if _, ok := c.Defs[st.Name()]; !ok {
		return block.State{}, fmt.Errorf("%q: %w", st.Name(), ErrUnknownBlock)
	}
	return st, nil
}

func (c *BlockCatalog) Known(id string) bool {
	_, ok := c.Defs[id]
	return ok
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
