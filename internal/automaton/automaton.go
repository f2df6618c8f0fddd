package automaton

import "errors"

var (
	ErrInvalidWord  = errors.New("dictionary word is empty")
	ErrNotBuilt     = errors.New("automaton failure links not built")
	ErrAlreadyBuilt = errors.New("automaton is already built and immutable")
	ErrNegativeSkip = errors.New("skip budget must be non-negative")
)

// nodeID addresses a node inside the automaton's arena. Fail links and
// transition targets are stored as indices, so the logical back-edges of the
// failure function never form an ownership cycle.
type nodeID int32

// rootID is the arena slot of the root node, which represents the empty prefix.
const rootID nodeID = 0

// node is one trie state: a prefix of one or more dictionary words.
type node struct {
	// next maps a single rune to the child extending this prefix.
	next map[rune]nodeID

	// fail points at the node for the longest proper suffix of this
	// node's prefix that is itself a prefix in the trie. The root fails
	// to itself.
	fail nodeID

	// terminal marks the end of a complete dictionary word; wordLen is
	// its length in runes and is meaningful only when terminal is set.
	terminal bool
	wordLen  int
}

// Match is one occurrence of a dictionary word in scanned text.
// Start and End are inclusive 0-based rune offsets; Word is the literal
// text slice covered by the span (for fuzzy matches it may contain the
// tolerated noise runes).
type Match struct {
	Word  string `json:"word"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Automaton is a multi-pattern matching automaton over a dictionary of words:
// a rune trie plus Aho-Corasick failure links.
//
// It is built in two strict phases: Insert every word, then Build exactly
// once. After Build the automaton is immutable and safe for unlimited
// concurrent scans; all scan state is local to each call.
type Automaton struct {
	nodes []node
	words int
	built bool
}

// New returns an empty automaton containing only the root node.
func New() *Automaton {
	return &Automaton{
		nodes: []node{{next: make(map[rune]nodeID)}},
	}
}

// Insert adds one dictionary word to the trie. It only ever adds or reuses
// child nodes and never touches fail links. Empty words are rejected with
// ErrInvalidWord; inserting after Build returns ErrAlreadyBuilt.
func (a *Automaton) Insert(word string) error {
	if a.built {
		return ErrAlreadyBuilt
	}
	if word == "" {
		return ErrInvalidWord
	}

	cur := rootID
	length := 0
	for _, r := range word {
		length++
		child, ok := a.nodes[cur].next[r]
		if !ok {
			child = nodeID(len(a.nodes))
			a.nodes = append(a.nodes, node{next: make(map[rune]nodeID)})
			a.nodes[cur].next[r] = child
		}
		cur = child
	}

	if !a.nodes[cur].terminal {
		a.words++
	}
	a.nodes[cur].terminal = true
	a.nodes[cur].wordLen = length
	return nil
}

// Build computes every fail link in one breadth-first pass over the trie and
// freezes the automaton. BFS order guarantees that when a node's fail link is
// resolved, every node on its parent's fail chain already carries a correct
// link. Build must complete before any scan.
func (a *Automaton) Build() error {
	if a.built {
		return ErrAlreadyBuilt
	}

	queue := make([]nodeID, 0, len(a.nodes))
	for _, child := range a.nodes[rootID].next {
		a.nodes[child].fail = rootID
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for r, child := range a.nodes[id].next {
			f := a.nodes[id].fail
			for f != rootID {
				if _, ok := a.nodes[f].next[r]; ok {
					break
				}
				f = a.nodes[f].fail
			}
			if target, ok := a.nodes[f].next[r]; ok {
				a.nodes[child].fail = target
			} else {
				a.nodes[child].fail = rootID
			}
			queue = append(queue, child)
		}
	}

	a.built = true
	return nil
}

// Built reports whether failure-link construction has completed.
func (a *Automaton) Built() bool {
	return a.built
}

// WordCount returns the number of distinct dictionary words inserted.
func (a *Automaton) WordCount() int {
	return a.words
}

// NodeCount returns the number of trie nodes, including the root.
func (a *Automaton) NodeCount() int {
	return len(a.nodes)
}
