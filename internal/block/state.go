package block

import (
	"sort"
	"strings"
)

// State identifies a block: a namespaced identifier plus a set of string
// properties. Properties are canonicalized to a sorted "k=v,k=v" list so that
// State is a comparable value type and equality means identifier plus full
// property set, regardless of the order properties were supplied in.
type State struct {
	name  string
	props string
}

// Air is the empty block state.
var Air = Make("minecraft:air", nil)

// Make builds a State from an identifier and an optional property map.
func Make(name string, props map[string]string) State {
	return State{name: name, props: canonProps(props)}
}

func canonProps(props map[string]string) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(props[k])
	}
	return b.String()
}

// Name returns the block identifier, e.g. "minecraft:stone".
func (s State) Name() string { return s.name }

// IsAir reports whether the state is the empty block.
func (s State) IsAir() bool { return s.name == Air.name && s.props == "" }

// Property returns the value of a single property.
func (s State) Property(key string) (string, bool) {
	for _, kv := range s.propPairs() {
		if kv[0] == key {
			return kv[1], true
		}
	}
	return "", false
}

// Properties returns a fresh copy of the property map.
func (s State) Properties() map[string]string {
	pairs := s.propPairs()
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		m[kv[0]] = kv[1]
	}
	return m
}

func (s State) propPairs() [][2]string {
	if s.props == "" {
		return nil
	}
	parts := strings.Split(s.props, ",")
	pairs := make([][2]string, 0, len(parts))
	for _, p := range parts {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs
}
