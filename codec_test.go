package keyinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundtrip(t *testing.T) {
	keys := []LogicalKey{
		Byte('a'), Byte('Z'), Byte(' '), Byte('<'), Byte('\\'), Byte('|'),
		Named(KeyEscape), Named(KeyUp), Named(KeyDown), Named(KeyLeft), Named(KeyRight),
		Named(KeyHome), Named(KeyEnd), Named(KeyPageUp), Named(KeyPageDown),
		Named(KeyInsert), Named(KeyDelete), Named(KeyF1), Named(KeyF12),
	}
	for _, r := range "abcxyz" {
		n, ok := CtrlLetter(r)
		require.True(t, ok)
		keys = append(keys, Named(n))
	}
	for _, r := range "ab19!@>" {
		n, ok := AltChord(r)
		require.True(t, ok)
		keys = append(keys, Named(n))
	}

	for _, k := range keys {
		encoded := DefaultCodec.EncodeKey(k)
		decoded := DefaultCodec.Decode(encoded)
		require.Equal(t, KeySeq{k}, decoded, "roundtrip of %s", encoded)
	}
}

func TestDecodeNamedTokens(t *testing.T) {
	testCases := []struct {
		text string
		want KeySeq
	}{
		{"", nil},
		{"abc", KeySeq{Byte('a'), Byte('b'), Byte('c')}},
		{"<Esc>", KeySeq{Named(KeyEscape)}},
		{"<ESC>", KeySeq{Named(KeyEscape)}},
		{"<Home>\t", KeySeq{Named(KeyHome), Byte('\t')}},
		{"a<Esc><Home>\t", KeySeq{Byte('a'), Named(KeyEscape), Named(KeyHome), Byte('\t')}},
		{"<C-a>", KeySeq{Named(keyCtrlBase)}},
		{"<S-a>", KeySeq{Byte('A')}},
	}
	for _, c := range testCases {
		require.Equal(t, c.want, DefaultCodec.Decode(c.text), "decode %q", c.text)
	}
}

func TestDecodeAltChordGreaterThanToken(t *testing.T) {
	n, ok := AltChord('>')
	require.True(t, ok)
	k := Named(n)

	encoded := DefaultCodec.EncodeKey(k)
	require.Equal(t, "<A->>", encoded)
	require.Equal(t, KeySeq{k}, DefaultCodec.Decode(encoded))

	// The payload '>' must not be mistaken for the token's own closing
	// delimiter when more text follows it.
	require.Equal(t, KeySeq{k, Byte('z')}, DefaultCodec.Decode(encoded+"z"))
}

func TestDecodeUnknownTokenLiteral(t *testing.T) {
	got := DefaultCodec.Decode("<NotAKey>")
	want := DefaultCodec.Decode("<NotAKey>") // never errors; decodes byte for byte
	require.Equal(t, want, got)
	require.Equal(t, Byte('<'), got[0])
	require.Equal(t, Byte('>'), got[len(got)-1])
}

func TestKeycodeFor(t *testing.T) {
	name, ok := DefaultCodec.KeycodeFor(KeyHome)
	require.True(t, ok)
	require.Equal(t, "khome", name)

	n, _ := CtrlLetter('a')
	_, ok = DefaultCodec.KeycodeFor(n)
	require.False(t, ok)
}
