package keyinput

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// KeySequenceCodec converts between human key notation (e.g. "a<Esc><Home>\t")
// and the decoded KeySeq the rest of the engine matches against. All of its
// tables are static and derived from the NamedKey enumeration, so a single
// KeySequenceCodec value has no mutable state and can be shared freely.
//
// A zero-value KeySequenceCodec is ready to use. It has no fields: every
// codec value decodes and encodes with the same package-level tables.
type KeySequenceCodec struct{}

// DefaultCodec is the codec used throughout the package. It is safe for
// concurrent use as it holds no mutable state.
var DefaultCodec = &KeySequenceCodec{}

// namedTokens maps a lower-cased <Name> token body to the LogicalKey it
// decodes to: either a plain byte (CR, Tab, lt, ...) or a NamedKey (Esc,
// the arrows, F1-F12, ...). The S-/C-/A- modifier forms are not listed here;
// they are handled separately since they parameterize over a range.
var namedTokens = map[string]LogicalKey{
	"esc":      Named(KeyEscape),
	"escape":   Named(KeyEscape),
	"cr":       Byte('\r'),
	"nl":       Byte('\n'),
	"tab":      Byte('\t'),
	"bs":       Byte(0x08),
	"space":    Byte(' '),
	"lt":       Byte('<'),
	"bslash":   Byte('\\'),
	"bar":      Byte('|'),
	"del":      Named(KeyDelete),
	"delete":   Named(KeyDelete),
	"up":       Named(KeyUp),
	"down":     Named(KeyDown),
	"left":     Named(KeyLeft),
	"right":    Named(KeyRight),
	"home":     Named(KeyHome),
	"end":      Named(KeyEnd),
	"pageup":   Named(KeyPageUp),
	"pagedown": Named(KeyPageDown),
	"insert":   Named(KeyInsert),
	"f1":       Named(KeyF1),
	"f2":       Named(KeyF2),
	"f3":       Named(KeyF3),
	"f4":       Named(KeyF4),
	"f5":       Named(KeyF5),
	"f6":       Named(KeyF6),
	"f7":       Named(KeyF7),
	"f8":       Named(KeyF8),
	"f9":       Named(KeyF9),
	"f10":      Named(KeyF10),
	"f11":      Named(KeyF11),
	"f12":      Named(KeyF12),
}

// keycodeNames maps a NamedKey that corresponds to a terminal capability to
// the termcap/terminfo capability name used to look up its default escape
// sequence. NamedKeys with no entry here (Ctrl-X and Alt-X chords, Escape
// itself) have no terminal capability.
var keycodeNames = map[NamedKey]string{
	KeyUp:       "kcuu1",
	KeyDown:     "kcud1",
	KeyLeft:     "kcub1",
	KeyRight:    "kcuf1",
	KeyHome:     "khome",
	KeyEnd:      "kend",
	KeyPageUp:   "kpp",
	KeyPageDown: "knp",
	KeyInsert:   "kich1",
	KeyDelete:   "kdch1",
	KeyF1:       "kf1",
	KeyF2:       "kf2",
	KeyF3:       "kf3",
	KeyF4:       "kf4",
	KeyF5:       "kf5",
	KeyF6:       "kf6",
	KeyF7:       "kf7",
	KeyF8:       "kf8",
	KeyF9:       "kf9",
	KeyF10:      "kf10",
	KeyF11:      "kf11",
	KeyF12:      "kf12",
}

// KeycodeFor returns the terminal capability name used to look up the
// default escape sequence for n, or ok=false if n has no terminal
// capability (Ctrl-X and Alt-X chords).
func (c *KeySequenceCodec) KeycodeFor(n NamedKey) (name string, ok bool) {
	name, ok = keycodeNames[n]
	return name, ok
}

// Decode parses human key notation into a KeySeq. Any character outside
// <...> decodes to its byte value. Any <Name> token (case-insensitive) is
// looked up in the fixed token table, the S-/C-/A- modifier prefixes, or the
// F1-F12 range. Unknown <Name> content decodes literally, byte for byte,
// including the angle brackets themselves: Decode never fails.
func (c *KeySequenceCodec) Decode(text string) KeySeq {
	var seq KeySeq
	for len(text) > 0 {
		if text[0] == '<' {
			if k, n, ok := decodeAngleToken(text); ok {
				seq = append(seq, k)
				text = text[n:]
				continue
			}
			// Unrecognized or unterminated token: emit '<' literally and
			// keep scanning from the next byte.
			seq = append(seq, Byte('<'))
			text = text[1:]
			continue
		}
		r, size := utf8.DecodeRuneInString(text)
		if r <= 0xff {
			seq = append(seq, Byte(byte(r)))
		} else {
			// Outside the single-byte range: fall back to encoding the rune
			// as its individual UTF-8 bytes so no information is lost.
			for i := 0; i < size; i++ {
				seq = append(seq, Byte(text[i]))
			}
		}
		text = text[size:]
	}
	return seq
}

// decodeAngleToken decodes a single <...> token at the start of text
// (text[0] == '<'), returning the key, the number of bytes consumed
// (including both angle brackets), and whether a token was recognized.
//
// The S-/C-/A- modifier forms are decoded by position, not by scanning for
// the next '>': the payload is exactly one rune wide, so its end is known
// (3 + the rune's own byte width) without caring what that rune is. A naive
// scan for the first '>' breaks the moment the payload rune is itself '>'
// (e.g. Alt-> , encoded "<A->>"), since that '>' would be mistaken for the
// token's closing delimiter instead of its payload. Plain <Name> tokens have
// no such ambiguity: none of their names contain '>', so scanning for the
// first one is exact.
func decodeAngleToken(text string) (LogicalKey, int, bool) {
	if len(text) > 3 && text[2] == '-' {
		switch mod := text[1]; mod {
		case 'S', 's', 'C', 'c', 'A', 'a':
			r, size := utf8.DecodeRuneInString(text[3:])
			end := 3 + size
			if end < len(text) && text[end] == '>' {
				if k, ok := decodeModifierToken(mod, r); ok {
					return k, end + 1, true
				}
			}
		}
	}
	if end := strings.IndexByte(text, '>'); end > 0 {
		if k, ok := namedTokens[strings.ToLower(text[1:end])]; ok {
			return k, end + 1, true
		}
	}
	return 0, 0, false
}

// decodeModifierToken decodes the S-/C-/A- modifier prefix applied to rune
// r. mod is case-insensitive.
func decodeModifierToken(mod byte, r rune) (LogicalKey, bool) {
	switch mod {
	case 'S', 's':
		if r >= 'a' && r <= 'z' {
			return Byte(byte(r - 'a' + 'A')), true
		}
		return Byte(byte(r)), true
	case 'C', 'c':
		if n, ok := CtrlLetter(r); ok {
			return Named(n), true
		}
	case 'A', 'a':
		if n, ok := AltChord(r); ok {
			return Named(n), true
		}
	}
	return 0, false
}

// EncodeKey returns the canonical human notation for a single LogicalKey:
// the <Name> form for a NamedKey, or the key's own byte for a raw byte.
// decode(encode_key(k)) always yields the single-element sequence [k].
func (c *KeySequenceCodec) EncodeKey(k LogicalKey) string {
	if k.IsNamed() {
		n := k.AsNamed()
		if r, ok := n.Letter(); ok {
			return "<C-" + string(r) + ">"
		}
		if r, ok := n.AltRune(); ok {
			return "<A-" + string(r) + ">"
		}
		return n.String()
	}
	return string([]byte{k.AsByte()})
}

// EncodeSeq renders a full KeySeq in human notation, one token per key.
func (c *KeySequenceCodec) EncodeSeq(seq KeySeq) string {
	var b strings.Builder
	for _, k := range seq {
		b.WriteString(c.EncodeKey(k))
	}
	return b.String()
}

// quoteHumanKey produces a stable, unique human_key for table-driven
// registrations (the built-in terminal escape table) where the "human"
// origin is really a raw byte sequence rather than operator-typed text.
func quoteHumanKey(seq []byte) string {
	return strconv.Quote(string(seq))
}
