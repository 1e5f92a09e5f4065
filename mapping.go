package keyinput

// Mapping is an immutable key_seq -> value_seq rewrite rule. HumanKey and
// HumanValue preserve the caller's original notation for listing and
// debugging; KeySeq and ValueSeq are the decoded forms used at match time.
//
// A Mapping is owned exclusively by the MapSet that created it. The Trie
// that indexes it only ever borrows a pointer; it never copies or outlives
// the owning MapSet.
type Mapping struct {
	HumanKey   string
	HumanValue string
	KeySeq     KeySeq
	ValueSeq   KeySeq
}

func newMapping(codec *KeySequenceCodec, humanKey, humanValue string) (*Mapping, error) {
	keySeq := codec.Decode(humanKey)
	if len(keySeq) == 0 {
		return nil, ErrEmptyKeySequence
	}
	return &Mapping{
		HumanKey:   humanKey,
		HumanValue: humanValue,
		KeySeq:     keySeq,
		ValueSeq:   codec.Decode(humanValue),
	}, nil
}
