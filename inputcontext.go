package keyinput

import "time"

// InputContext matches a stream of LogicalKeys read from a source against
// one MapSet's Trie, a key at a time, applying one configured timeout. Two
// InputContexts are chained to form the full engine: a terminal context
// (reads raw bytes, matches the terminal escape table) feeds a user context
// (reads resolved keys from the terminal context, matches the user's macro
// table).
//
// An InputContext is not safe for concurrent use; it is driven by a single
// event-loop task, as the rest of the engine is.
type InputContext struct {
	source  source
	mapSet  *MapSet
	timeout time.Duration

	// primary is the FIFO of keys queued for the next GetKey call: macro
	// expansions from a prior match, and keys requeued after a failed match
	// consumed more than it could use. It is drained before source is ever
	// read again.
	primary []LogicalKey

	// volatile accumulates the keys consumed by the Trie during the match
	// attempt currently in progress, minus whatever a found terminal node
	// has already subsumed (see findKey). What remains when the attempt
	// ends is either returned and requeued (no mapping ever matched: the
	// oldest key is returned and the rest go back onto primary) or requeued
	// onto primary behind a matched mapping's value_seq, as the overconsumed
	// tail past it.
	volatile []LogicalKey
}

// newInputContext builds an InputContext reading from src and matching
// against mapSet, with the given per-read timeout.
func newInputContext(src source, mapSet *MapSet, timeout time.Duration) *InputContext {
	return &InputContext{source: src, mapSet: mapSet, timeout: timeout}
}

// SetTimeout changes the timeout applied to reads this context issues
// against its source. It takes effect on the next GetKey call.
func (c *InputContext) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// SetMapSet swaps the MapSet this context matches against. Any match
// already in progress is abandoned: its Trie is reset and its volatile
// buffer is pushed back onto primary unconsumed, so no key already read
// from source is lost.
func (c *InputContext) SetMapSet(mapSet *MapSet) {
	c.abandonMatch()
	c.mapSet = mapSet
}

func (c *InputContext) abandonMatch() {
	if len(c.volatile) == 0 {
		return
	}
	c.primary = append(c.volatile, c.primary...)
	c.volatile = c.volatile[:0]
	c.mapSet.trie.Reset()
}

// findChar reads one LogicalKey: from primary if it has one queued, else
// from source using this context's configured timeout.
func (c *InputContext) findChar() (key LogicalKey, timedOut bool, err error) {
	if len(c.primary) > 0 {
		key = c.primary[0]
		c.primary = c.primary[1:]
		return key, false, nil
	}
	return c.source.next(c.timeout)
}

// findKey runs one full match attempt against the context's Trie: pull keys
// via findChar, feeding each to the Trie, until the Trie reaches Found,
// reaches NotFound, or a read times out.
//
// Every time a push lands on a terminal node, the volatile buffer is
// cleared: those keys are now subsumed by that mapping. This matters beyond
// the obvious exact-match case: with maps abc->X and abcde->Y, typing
// "abcd" and timing out walks past the abc terminal node (remembering X as
// last-found) before the timeout hits, so 'd' is read and appended to an
// already-cleared volatile buffer. Whatever is left in volatile when the
// loop ends is exactly the overconsumed tail past whichever mapping
// Finalize ultimately resolves to, found or not.
//
// On a successful match, the mapping's value_seq is queued ahead of any
// overconsumed tail and findKey recurses to resolve the next key from that
// queue, so the replayed keys are matched against the Trie exactly like any
// other input instead of the first one bypassing it.
//
// On a failed match (NotFound, or a timeout after Finalize fails to resolve
// to Found), the keys consumed during the attempt must not be lost: the
// oldest of them is returned as this call's result, and the rest are
// requeued onto primary in their original arrival order, so later calls
// replay them byte for byte. This is the opposite of a literal
// "pop-the-most-recent-key" reading of the match-failure rule: returning the
// most recently read key first would deliver "abd" as d, a, b instead of a,
// b, d, which is not how a failed macro match ever actually replays.
func (c *InputContext) findKey() (key LogicalKey, ok bool, err error) {
	c.mapSet.trie.Reset()
	c.volatile = c.volatile[:0]
	readAny := false

	for {
		k, timedOut, err := c.findChar()
		if err != nil {
			return 0, false, err
		}
		if timedOut {
			break
		}
		readAny = true
		c.volatile = append(c.volatile, k)
		result := c.mapSet.trie.Push(k)
		if result.FoundMapping {
			c.volatile = c.volatile[:0]
		}
		if !result.Advanced {
			break // NotFound: k does not extend any known prefix.
		}
		if c.mapSet.trie.State() != stateMatching {
			break // Exact leaf reached; no longer sequence can extend it.
		}
	}

	if !readAny {
		// The very first read timed out before consuming anything: a pure
		// timeout with nothing pending to report.
		return 0, false, nil
	}

	c.mapSet.trie.Finalize()
	if mapping := c.mapSet.trie.Value(); mapping != nil {
		debugPrintf("keyinput: matched %s -> %s\n", mapping.HumanKey, mapping.HumanValue)
		overconsumed := append([]LogicalKey(nil), c.volatile...)
		c.volatile = c.volatile[:0]
		replay := append(append([]LogicalKey(nil), mapping.ValueSeq...), overconsumed...)
		c.primary = append(replay, c.primary...)
		// Re-invoke findKey rather than popping the first replayed key
		// directly: a macro's value_seq is itself ordinary input and may
		// complete a further mapping (e.g. a macro that expands to the
		// human_key of a second macro), so it must run through the Trie
		// exactly like any other key, not bypass matching for its first
		// element only.
		return c.findKey()
	}

	oldest := c.volatile[0]
	c.primary = append(append([]LogicalKey(nil), c.volatile[1:]...), c.primary...)
	c.volatile = c.volatile[:0]
	debugPrintf("keyinput: no match, replaying %d key(s), returning %s\n", len(c.primary), oldest)
	return oldest, true, nil
}

// GetKey returns the next fully resolved LogicalKey, or ok=false if the
// configured timeout elapsed with nothing to report. Every read it issues
// against source is given the configured timeout; a match in progress can
// issue several such reads, so one call can wait longer than one timeout.
func (c *InputContext) GetKey() (key LogicalKey, ok bool, err error) {
	return c.findKey()
}

// Pending reports whether primary already has a queued key. It does not
// consult source.
func (c *InputContext) Pending() bool {
	return len(c.primary) > 0
}
