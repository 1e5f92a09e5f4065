package keyinput

import "fmt"

// LogicalKey is the engine's atomic output unit. It is a signed integer wide
// enough to hold two disjoint spaces: raw bytes in 1..255, and named keys at
// 10000 and above. The zero value is reserved as a terminator and is never
// returned from a public API.
type LogicalKey int32

// namedBase is the first integer value used for NamedKey encoding. Bytes
// occupy 1..255, well clear of this boundary.
const namedBase LogicalKey = 10000

// Byte wraps a raw byte value as a LogicalKey.
func Byte(b byte) LogicalKey {
	return LogicalKey(b)
}

// Named wraps a NamedKey as a LogicalKey.
func Named(n NamedKey) LogicalKey {
	return namedBase + LogicalKey(n)
}

// IsByte reports whether k represents a raw byte.
func (k LogicalKey) IsByte() bool {
	return k > 0 && k < namedBase
}

// IsNamed reports whether k represents a NamedKey.
func (k LogicalKey) IsNamed() bool {
	return k >= namedBase
}

// AsByte returns the raw byte value of k. Only valid when IsByte() is true.
func (k LogicalKey) AsByte() byte {
	return byte(k)
}

// AsNamed returns the NamedKey value of k. Only valid when IsNamed() is true.
func (k LogicalKey) AsNamed() NamedKey {
	return NamedKey(k - namedBase)
}

func (k LogicalKey) String() string {
	switch {
	case k == 0:
		return "<nul>"
	case k.IsByte():
		return fmt.Sprintf("%q", byte(k))
	default:
		return k.AsNamed().String()
	}
}

// NamedKey enumerates the closed set of high-level keys the engine can
// recognize. The enumeration is fixed at build time; there is no facility to
// extend it at runtime. Alt-chords and Ctrl-letters are derived by formula
// from a contiguous block rather than hand enumerated one by one, but the
// resulting set of values is just as closed as if they had been spelled out.
type NamedKey int32

const (
	KeyEscape NamedKey = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	keyCtrlBase // Ctrl-A .. Ctrl-Z follow, 26 values
)

// keyAltBase is the first NamedKey in the Alt-chord block. The block covers
// every printable, non-space ASCII byte (0x21..0x7e), which is the "ASCII
// letter and digit range plus a fixed set of punctuation/shifted-punctuation
// chords" the specification calls for.
const (
	keyAltLow  = 0x21
	keyAltHigh = 0x7e
	keyAltBase = keyCtrlBase + 26
	// numNamedKeys is one past the last valid NamedKey value.
	numNamedKeys = keyAltBase + (keyAltHigh - keyAltLow + 1)
)

// CtrlLetter returns the NamedKey for Ctrl-<r> where r is an ASCII letter,
// and reports whether r is in range.
func CtrlLetter(r rune) (NamedKey, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return keyCtrlBase + NamedKey(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return keyCtrlBase + NamedKey(r-'A'), true
	default:
		return 0, false
	}
}

// Letter returns the lowercase ASCII letter this NamedKey stands for, if n is
// a Ctrl-letter chord.
func (n NamedKey) Letter() (rune, bool) {
	if n >= keyCtrlBase && n < keyCtrlBase+26 {
		return rune('a' + (n - keyCtrlBase)), true
	}
	return 0, false
}

// AltChord returns the NamedKey for Alt-<r>, where r is any printable ASCII
// character in 0x21..0x7e (letters, digits, and punctuation, shifted or
// not), and reports whether r is in range.
func AltChord(r rune) (NamedKey, bool) {
	if r < keyAltLow || r > keyAltHigh {
		return 0, false
	}
	return keyAltBase + NamedKey(r-keyAltLow), true
}

// AltRune returns the character this NamedKey stands for, if n is an
// Alt-chord.
func (n NamedKey) AltRune() (rune, bool) {
	if n >= keyAltBase && n < numNamedKeys {
		return rune(int(n-keyAltBase) + keyAltLow), true
	}
	return 0, false
}

var namedKeyNames = map[NamedKey]string{
	KeyEscape:   "Esc",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyInsert:   "Insert",
	KeyDelete:   "Delete",
	KeyF1:       "F1",
	KeyF2:       "F2",
	KeyF3:       "F3",
	KeyF4:       "F4",
	KeyF5:       "F5",
	KeyF6:       "F6",
	KeyF7:       "F7",
	KeyF8:       "F8",
	KeyF9:       "F9",
	KeyF10:      "F10",
	KeyF11:      "F11",
	KeyF12:      "F12",
}

func (n NamedKey) String() string {
	if s, ok := namedKeyNames[n]; ok {
		return "<" + s + ">"
	}
	if r, ok := n.Letter(); ok {
		return fmt.Sprintf("<C-%c>", r)
	}
	if r, ok := n.AltRune(); ok {
		return fmt.Sprintf("<A-%c>", r)
	}
	return "<?>"
}
