package automaton

// ScanExact returns every dictionary word occurring as a contiguous substring
// of text, including overlapping and nested occurrences. Matches are reported
// left to right by end position; matches ending at the same position are
// reported longest first.
//
// Each fallback step strictly decreases node depth, so total fallback work is
// bounded by the forward depth traversed and the scan is amortized
// near-linear in len(text).
func (a *Automaton) ScanExact(text string) ([]Match, error) {
	if !a.built {
		return nil, ErrNotBuilt
	}

	runes := []rune(text)
	var matches []Match

	cur := rootID
	for i, r := range runes {
		// Fall back until a transition for r exists or we reach the root.
		for cur != rootID {
			if _, ok := a.nodes[cur].next[r]; ok {
				break
			}
			cur = a.nodes[cur].fail
		}
		if next, ok := a.nodes[cur].next[r]; ok {
			cur = next
		}

		// Every terminal on the fail chain is a word ending at i.
		// The chain runs deepest to shallowest, which yields the
		// longest-first order for equal end positions.
		for n := cur; n != rootID; n = a.nodes[n].fail {
			if a.nodes[n].terminal {
				start := i - a.nodes[n].wordLen + 1
				matches = append(matches, Match{
					Word:  string(runes[start : i+1]),
					Start: start,
					End:   i,
				})
			}
		}
	}

	return matches, nil
}
