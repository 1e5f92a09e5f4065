package keyinput

// matchState is the Trie's matching state machine, advanced one LogicalKey
// at a time by Push.
type matchState int

const (
	stateMatching matchState = iota
	stateFound
	stateNotFound
)

type trieNode struct {
	children map[LogicalKey]*trieNode
	value    *Mapping
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[LogicalKey]*trieNode)}
}

// Trie is a stateful longest-prefix matcher over KeySeq. Unlike a plain
// lookup trie, it carries mutable matching state between Push calls: a
// cursor, a state enum, and a "last-found" terminal node that survives past
// the point a longer candidate sequence stops matching. That last-found
// pointer, combined with Finalize, is what lets a timeout resolve to the
// longest mapping seen so far even when a strictly longer mapping shares its
// prefix (see Finalize).
type Trie struct {
	root      *trieNode
	cursor    *trieNode
	state     matchState
	lastFound *trieNode
	foundYet  bool
}

// NewTrie returns an empty, reset Trie.
func NewTrie() *Trie {
	t := &Trie{root: newTrieNode()}
	t.Reset()
	return t
}

// Insert binds seq to value, overwriting any existing binding for the exact
// same sequence. Nodes are created on demand along the path. The Trie never
// copies value; it borrows the pointer for as long as the owning MapSet
// keeps the Mapping alive.
func (t *Trie) Insert(seq KeySeq, value *Mapping) {
	node := t.root
	for _, k := range seq {
		child, ok := node.children[k]
		if !ok {
			child = newTrieNode()
			node.children[k] = child
		}
		node = child
	}
	node.value = value
}

// Erase clears the terminal value at seq's endpoint and prunes any leaf
// ancestor left with no children and no terminal value. It never prunes a
// node that still serves a longer sequence. After Erase, the set of
// sequences the Trie recognizes is exactly the prior set minus seq.
func (t *Trie) Erase(seq KeySeq) {
	path := make([]*trieNode, 1, len(seq)+1)
	path[0] = t.root
	node := t.root
	for _, k := range seq {
		child, ok := node.children[k]
		if !ok {
			return // seq was never present.
		}
		path = append(path, child)
		node = child
	}
	node.value = nil

	// Prune childless, valueless nodes from the leaf back up.
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if len(n.children) != 0 || n.value != nil {
			break
		}
		parent := path[i-1]
		delete(parent.children, seq[i-1])
	}
}

// Reset returns the Trie to the start of a fresh matching attempt: cursor at
// root, state Matching, last-found cleared.
func (t *Trie) Reset() {
	t.cursor = t.root
	t.state = stateMatching
	t.lastFound = nil
	t.foundYet = false
}

// PushResult reports the outcome of one Trie.Push call.
type PushResult struct {
	// Advanced is true if the cursor moved to a child node.
	Advanced bool
	// FoundMapping is true if the node reached by this push carries a
	// terminal value. Reaching such a node mid-walk does not by itself end
	// the match: a longer mapping sharing this prefix may still complete
	// (see Finalize).
	FoundMapping bool
}

// Push advances the match by one key. If the Trie is not in the Matching
// state, Push is a no-op (a programmer error to call it further) and
// returns the zero PushResult.
func (t *Trie) Push(k LogicalKey) PushResult {
	if t.state != stateMatching {
		return PushResult{}
	}
	child, ok := t.cursor.children[k]
	if !ok {
		t.state = stateNotFound
		t.cursor = nil
		return PushResult{}
	}
	t.cursor = child
	result := PushResult{Advanced: true}
	if child.value != nil {
		t.lastFound = child
		t.foundYet = true
		result.FoundMapping = true
	}
	if len(child.children) == 0 {
		t.state = stateFound
	}
	return result
}

// Finalize implements the "longest-so-far wins on timeout" rule: given maps
// abc->X and abcde->Y, typing "abcd" and then timing out must still resolve
// to X, even though the cursor is sitting on a non-terminal, non-leaf node.
// If any push along the way reported FoundMapping, Finalize transitions the
// state to Found regardless of where the cursor ended up.
func (t *Trie) Finalize() {
	if t.foundYet {
		t.state = stateFound
	}
}

// State returns the Trie's current matching state.
func (t *Trie) State() matchState {
	return t.state
}

// Value returns the most recently remembered terminal Mapping, or nil if no
// push has yet reached one. Because last-found is updated on every push
// that lands on a terminal node (including the final leaf of an exact
// match), Value is correct for both the "reached a leaf" route and the
// "Finalize remembered an earlier terminal" route.
func (t *Trie) Value() *Mapping {
	if !t.foundYet {
		return nil
	}
	return t.lastFound.value
}
