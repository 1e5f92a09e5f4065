package keyinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seqOf(bs string) KeySeq {
	seq := make(KeySeq, len(bs))
	for i := 0; i < len(bs); i++ {
		seq[i] = Byte(bs[i])
	}
	return seq
}

func pushAll(tr *Trie, bs string) PushResult {
	var last PushResult
	for i := 0; i < len(bs); i++ {
		last = tr.Push(Byte(bs[i]))
		if tr.State() != stateMatching {
			break
		}
	}
	return last
}

func TestTrieExactMatch(t *testing.T) {
	tr := NewTrie()
	m := &Mapping{HumanKey: "abc"}
	tr.Insert(seqOf("abc"), m)

	pushAll(tr, "abc")
	require.Equal(t, stateFound, tr.State())
	tr.Finalize()
	require.Same(t, m, tr.Value())
}

func TestTrieNotFound(t *testing.T) {
	tr := NewTrie()
	tr.Insert(seqOf("abc"), &Mapping{HumanKey: "abc"})

	pushAll(tr, "xy")
	require.Equal(t, stateNotFound, tr.State())
	tr.Finalize()
	require.Nil(t, tr.Value())
}

func TestTrieSubsetLongestMatchOnTimeout(t *testing.T) {
	tr := NewTrie()
	short := &Mapping{HumanKey: "abc"}
	long := &Mapping{HumanKey: "abcde"}
	tr.Insert(seqOf("abc"), short)
	tr.Insert(seqOf("abcde"), long)

	pushAll(tr, "abcd") // times out here, one short of "abcde"
	require.Equal(t, stateMatching, tr.State())
	tr.Finalize()
	require.Equal(t, stateFound, tr.State())
	require.Same(t, short, tr.Value())
}

func TestTrieEraseIsInverseOfInsert(t *testing.T) {
	tr := NewTrie()
	a := &Mapping{HumanKey: "ab"}
	b := &Mapping{HumanKey: "abc"}
	tr.Insert(seqOf("ab"), a)
	tr.Insert(seqOf("abc"), b)

	tr.Erase(seqOf("abc"))

	tr.Reset()
	pushAll(tr, "ab")
	require.Equal(t, stateFound, tr.State())
	tr.Finalize()
	require.Same(t, a, tr.Value())

	tr.Reset()
	tr.Erase(seqOf("ab"))
	pushAll(tr, "ab")
	tr.Finalize()
	require.Nil(t, tr.Value())
}

func TestTrieResetClearsMatchState(t *testing.T) {
	tr := NewTrie()
	tr.Insert(seqOf("ab"), &Mapping{HumanKey: "ab"})
	pushAll(tr, "ab")
	require.Equal(t, stateFound, tr.State())

	tr.Reset()
	require.Equal(t, stateMatching, tr.State())
	require.Nil(t, tr.Value())
}
