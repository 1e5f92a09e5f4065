package keyinput

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestByteReaderReadyFalseOnEmptyPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	reader := NewByteReader()
	ready, err := reader.Ready(int(r.Fd()), 10*time.Millisecond)
	require.NoError(t, err)
	require.False(t, ready)
}

func TestByteReaderReadyTrueAfterWrite(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte("x"))
	require.NoError(t, err)

	reader := NewByteReader()
	ready, err := reader.Ready(int(r.Fd()), 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ready)
}

func TestByteReaderGetCharReadsWrittenByte(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte{0x42})
	require.NoError(t, err)

	reader := NewByteReader()
	b, timedOut, err := reader.GetChar(int(r.Fd()), 10*time.Millisecond)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, byte(0x42), b)
}

func TestByteReaderGetCharTimesOutOnEmptyPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	reader := NewByteReader()
	start := time.Now()
	_, timedOut, err := reader.GetChar(int(r.Fd()), 20*time.Millisecond)
	require.NoError(t, err)
	require.True(t, timedOut)
	require.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestByteReaderGetCharReadsBytesInOrder(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte("ab"))
	require.NoError(t, err)

	reader := NewByteReader()
	b1, timedOut, err := reader.GetChar(int(r.Fd()), 10*time.Millisecond)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, byte('a'), b1)

	b2, timedOut, err := reader.GetChar(int(r.Fd()), 10*time.Millisecond)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, byte('b'), b2)
}

func TestByteReaderGetCharNonBlockingWithZeroTimeout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	reader := NewByteReader()
	_, timedOut, err := reader.GetChar(int(r.Fd()), 0)
	require.NoError(t, err)
	require.True(t, timedOut)
}
