package keyinput

import (
	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/gdamore/tcell/v2/terminfo/dynamic"
)

// NewTerminalKeyTable builds the built-in MapSet that resolves a terminal's
// raw escape sequences to NamedKeys: the byte sequences a given TERM emits
// for the arrow keys, Home/End, function keys, and so on, plus a fixed
// overlay (bare ESC, the ESC [ / ESC O arrow, Home and End sequences, and
// the ESC-<letter> Alt-chord convention most terminals emit for a meta-key
// press).
//
// termName is ordinarily the caller's $TERM. Lookup first tries the
// statically linked terminfo database built into tcell; if termName isn't
// among those, it falls back to asking the system's infocmp for a dynamic
// description. If both fail, NewTerminalKeyTable still returns a usable
// table: just the fixed overlay, with no capability-derived entries. A
// terminal this engine has never heard of should degrade to byte-for-byte
// passthrough, not fail to start.
func NewTerminalKeyTable(termName string) *MapSet {
	set := NewMapSet(DefaultCodec)

	ti, err := terminfo.LookupTerminfo(termName)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(termName)
	}
	if err == nil {
		registerCapability(set, ti.KeyUp, Named(KeyUp))
		registerCapability(set, ti.KeyDown, Named(KeyDown))
		registerCapability(set, ti.KeyLeft, Named(KeyLeft))
		registerCapability(set, ti.KeyRight, Named(KeyRight))
		registerCapability(set, ti.KeyHome, Named(KeyHome))
		registerCapability(set, ti.KeyEnd, Named(KeyEnd))
		registerCapability(set, ti.KeyPgUp, Named(KeyPageUp))
		registerCapability(set, ti.KeyPgDn, Named(KeyPageDown))
		registerCapability(set, ti.KeyInsert, Named(KeyInsert))
		registerCapability(set, ti.KeyDelete, Named(KeyDelete))
		registerCapability(set, ti.KeyF1, Named(KeyF1))
		registerCapability(set, ti.KeyF2, Named(KeyF2))
		registerCapability(set, ti.KeyF3, Named(KeyF3))
		registerCapability(set, ti.KeyF4, Named(KeyF4))
		registerCapability(set, ti.KeyF5, Named(KeyF5))
		registerCapability(set, ti.KeyF6, Named(KeyF6))
		registerCapability(set, ti.KeyF7, Named(KeyF7))
		registerCapability(set, ti.KeyF8, Named(KeyF8))
		registerCapability(set, ti.KeyF9, Named(KeyF9))
		registerCapability(set, ti.KeyF10, Named(KeyF10))
		registerCapability(set, ti.KeyF11, Named(KeyF11))
		registerCapability(set, ti.KeyF12, Named(KeyF12))
	}

	addOverlay(set)
	return set
}

// registerCapability adds a single escape sequence to set, keyed by its
// quoted bytes so it never collides with operator-typed human notation. The
// mapping's key sequence is seq's raw bytes, not a decoding of the quoted
// key. A capability the terminfo entry leaves blank (the terminal has no
// such key) is silently skipped.
func registerCapability(set *MapSet, seq string, key LogicalKey) {
	if seq == "" {
		return
	}
	humanKey := quoteHumanKey([]byte(seq))
	keySeq := make(KeySeq, len(seq))
	for i := 0; i < len(seq); i++ {
		keySeq[i] = Byte(seq[i])
	}
	if old, ok := set.mappings[humanKey]; ok {
		set.trie.Erase(old.KeySeq)
	}
	m := &Mapping{HumanKey: humanKey, HumanValue: DefaultCodec.EncodeKey(key), KeySeq: keySeq, ValueSeq: KeySeq{key}}
	set.mappings[humanKey] = m
	set.trie.Insert(keySeq, m)
}

// addOverlay registers the sequences terminals commonly emit whether or not
// their terminfo entry lists them: a bare ESC not followed by anything else
// (only resolvable by the escape timeout expiring with nothing further
// typed), the ESC [ and ESC O forms of the arrow keys, Home and End, and the
// ESC-<letter> convention terminals use to report a meta/alt-modified
// keypress.
func addOverlay(set *MapSet) {
	registerCapability(set, "\x1b", Named(KeyEscape))
	for _, o := range []struct {
		seq string
		key NamedKey
	}{
		{"\x1b[A", KeyUp}, {"\x1b[B", KeyDown}, {"\x1b[C", KeyRight}, {"\x1b[D", KeyLeft},
		{"\x1b[H", KeyHome}, {"\x1b[F", KeyEnd},
		{"\x1bOA", KeyUp}, {"\x1bOB", KeyDown}, {"\x1bOC", KeyRight}, {"\x1bOD", KeyLeft},
		{"\x1bOH", KeyHome}, {"\x1bOF", KeyEnd},
	} {
		registerCapability(set, o.seq, Named(o.key))
	}
	for r := rune(keyAltLow); r <= keyAltHigh; r++ {
		n, ok := AltChord(r)
		if !ok {
			continue
		}
		registerCapability(set, string([]byte{0x1b, byte(r)}), Named(n))
	}
}
