package keyinput

import "strings"

// KeySeq is an ordered, finite sequence of LogicalKey values: the matching
// vocabulary unit for a Trie and the result of decoding a human key
// notation string.
type KeySeq []LogicalKey

// Equal reports whether s and o contain the same keys in the same order.
func (s KeySeq) Equal(o KeySeq) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s KeySeq) String() string {
	var b strings.Builder
	for _, k := range s {
		b.WriteString(k.String())
	}
	return b.String()
}

// clone returns a copy of s, so callers can safely retain a KeySeq across
// mutations of the slice it was derived from.
func (s KeySeq) clone() KeySeq {
	out := make(KeySeq, len(s))
	copy(out, s)
	return out
}
