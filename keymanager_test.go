package keyinput

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newPipeManager builds a KeyManager backed by an os.Pipe, with a fixed
// terminal MapSet so the test is independent of the host's $TERM.
func newPipeManager(t *testing.T, terminalSet *MapSet) (*KeyManager, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(); w.Close() })

	km := NewKeyManager(int(r.Fd()), "", WithTerminalKeyTable(terminalSet))
	km.SetEscapeTimeout(5 * time.Millisecond)
	km.SetMacroTimeout(20 * time.Millisecond)
	return km, w
}

func TestKeyManagerEscapeDisambiguation(t *testing.T) {
	set := NewMapSet(DefaultCodec)
	set.Register("\x1b[A", "<Up>")
	km, w := newPipeManager(t, set)

	_, err := w.Write([]byte{0x1b, 0x5b, 0x41})
	require.NoError(t, err)

	key, ok, err := km.GetKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Named(KeyUp), key)
}

func TestKeyManagerLoneEscape(t *testing.T) {
	set := NewMapSet(DefaultCodec)
	set.Register("\x1b", "<Esc>") // the built-in table's bare-ESC binding
	set.Register("\x1b[A", "<Up>")
	km, w := newPipeManager(t, set)

	_, err := w.Write([]byte{0x1b})
	require.NoError(t, err)

	key, ok, err := km.GetKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Named(KeyEscape), key)
}

func TestKeyManagerMacroOverNamedKey(t *testing.T) {
	set := NewMapSet(DefaultCodec)
	set.Register("\x01", "<F1>") // stand-in terminal binding for this test
	km, w := newPipeManager(t, set)

	macros := NewMapSet(DefaultCodec)
	macros.Register("<F1>", "hi")
	km.SetUserMapSet(macros)

	_, err := w.Write([]byte{0x01})
	require.NoError(t, err)

	k1, ok, err := km.GetKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Byte('h'), k1)

	k2, ok, err := km.GetKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Byte('i'), k2)
}

func TestKeyManagerEmptyUserMapSetIsIdentity(t *testing.T) {
	set := NewMapSet(DefaultCodec)
	set.Register("\x1b[A", "<Up>")
	km, w := newPipeManager(t, set)

	_, err := w.Write([]byte("q"))
	require.NoError(t, err)

	key, ok, err := km.GetKey()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Byte('q'), key)
}

func TestKeyManagerGetKeyBlockingWaitsAndRestoresTimeouts(t *testing.T) {
	set := NewMapSet(DefaultCodec)
	km, w := newPipeManager(t, set)

	go func() {
		time.Sleep(30 * time.Millisecond) // past both configured timeouts
		w.Write([]byte("z"))
	}()

	key, err := km.GetKeyBlocking()
	require.NoError(t, err)
	require.Equal(t, Byte('z'), key)

	// The short timeouts set up by newPipeManager must be back in effect:
	// with nothing queued, a plain GetKey should report a timeout rather
	// than block.
	_, ok, err := km.GetKey()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKeyManagerCanGetKey(t *testing.T) {
	set := NewMapSet(DefaultCodec)
	km, w := newPipeManager(t, set)

	ready, err := km.CanGetKey()
	require.NoError(t, err)
	require.False(t, ready)

	_, err = w.Write([]byte("x"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	ready, err = km.CanGetKey()
	require.NoError(t, err)
	require.True(t, ready)
}
