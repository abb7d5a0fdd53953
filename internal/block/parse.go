package block

import (
	"fmt"
	"strings"
)

// Parse reads the bracketed string form used by Sponge schematic palettes,
// e.g. "minecraft:oak_stairs[facing=north,half=bottom]". The property list is
// optional. Malformed key=value entries are skipped rather than rejected;
// schematic files in the wild carry the occasional stray comma.
func Parse(s string) (State, error) {
	name := s
	props := map[string]string{}
	if i := strings.IndexByte(s, '['); i >= 0 {
		name = s[:i]
		end := strings.LastIndexByte(s, ']')
		if end < i {
			end = len(s)
		}
		for _, kv := range strings.Split(s[i+1:end], ",") {
			k, v, ok := strings.Cut(kv, "=")
			k = strings.TrimSpace(k)
			v = strings.TrimSpace(v)
			if !ok || k == "" {
				continue
			}
			props[k] = v
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return State{}, fmt.Errorf("empty block identifier in %q", s)
	}
	return Make(name, props), nil
}

// String renders the canonical bracketed form. It is the inverse of Parse for
// any state produced by Make.
func (s State) String() string {
	if s.props == "" {
		return s.name
	}
	return s.name + "[" + s.props + "]"
}
