package keyinput

import "sort"

// MapSet owns one set of key->value bindings: either the built-in terminal
// escape table or a user-defined macro map. It wraps a Trie plus a
// human_key -> Mapping dictionary; every registration path updates both, so
// dictionary.keys() always equals the set of human_keys the Trie's
// terminal-valued nodes were built from.
type MapSet struct {
	codec      *KeySequenceCodec
	trie       *Trie
	mappings   map[string]*Mapping
}

// NewMapSet returns an empty MapSet that decodes human notation with codec.
// A nil codec defaults to DefaultCodec.
func NewMapSet(codec *KeySequenceCodec) *MapSet {
	if codec == nil {
		codec = DefaultCodec
	}
	return &MapSet{
		codec:    codec,
		trie:     NewTrie(),
		mappings: make(map[string]*Mapping),
	}
}

// Register decodes humanKey and humanValue and binds the resulting Mapping,
// replacing any existing entry with the same humanKey (its old Trie entry is
// erased first). It fails only when humanKey decodes to an empty KeySeq.
func (m *MapSet) Register(humanKey, humanValue string) (*Mapping, error) {
	mapping, err := newMapping(m.codec, humanKey, humanValue)
	if err != nil {
		return nil, err
	}
	if old, ok := m.mappings[humanKey]; ok {
		m.trie.Erase(old.KeySeq)
	}
	m.mappings[humanKey] = mapping
	m.trie.Insert(mapping.KeySeq, mapping)
	return mapping, nil
}

// Deregister removes the mapping registered under humanKey, if any, and
// reports whether one was found.
func (m *MapSet) Deregister(humanKey string) bool {
	old, ok := m.mappings[humanKey]
	if !ok {
		return false
	}
	m.trie.Erase(old.KeySeq)
	delete(m.mappings, humanKey)
	return true
}

// Iterate returns every Mapping in the set, ordered by human_key, for
// listing and debugging.
func (m *MapSet) Iterate() []*Mapping {
	keys := make([]string, 0, len(m.mappings))
	for k := range m.mappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Mapping, len(keys))
	for i, k := range keys {
		out[i] = m.mappings[k]
	}
	return out
}

// Len returns the number of mappings currently registered.
func (m *MapSet) Len() int {
	return len(m.mappings)
}
