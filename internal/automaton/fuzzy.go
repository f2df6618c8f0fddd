package automaton

// ScanFuzzy finds approximate occurrences of dictionary words where up to
// maxSkip consecutive irrelevant runes are tolerated between two runes that
// otherwise continue a match. It models obfuscation by insertion only:
// the word's own runes must all appear, in order, unmodified.
//
// Matching is greedy and first-found: the first terminal reached while
// extending a candidate ends that candidate, its span is marked consumed,
// and consumed positions are never reused as new starts. Returned spans
// therefore never overlap. The reported Word is the literal text slice and
// may include the skipped noise runes.
func (a *Automaton) ScanFuzzy(text string, maxSkip int) ([]Match, error) {
	if !a.built {
		return nil, ErrNotBuilt
	}
	if maxSkip < 0 {
		return nil, ErrNegativeSkip
	}

	runes := []rune(text)
	consumed := make([]bool, len(runes))
	var matches []Match

	for i := 0; i < len(runes); i++ {
		if consumed[i] {
			continue
		}

		cur := rootID
		skipped := 0
		end := i

		for j := i; j < len(runes); j++ {
			if next, ok := a.nodes[cur].next[runes[j]]; ok {
				cur = next
				end = j
				skipped = 0
				if a.nodes[cur].terminal {
					matches = append(matches, Match{
						Word:  string(runes[i : end+1]),
						Start: i,
						End:   end,
					})
					for k := i; k <= end; k++ {
						consumed[k] = true
					}
					break
				}
			} else if cur != rootID && skipped < maxSkip {
				// Treat the mismatched rune as noise and keep going.
				skipped++
			} else {
				break
			}
		}
	}

	return matches, nil
}
